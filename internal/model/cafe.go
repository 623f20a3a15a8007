package model

// Cafe 咖啡店表 — 对应 cafes
// CafeID 为服务端生成的 UUID，创建后不可变
type Cafe struct {
	CafeID      string `gorm:"type:uuid;primaryKey"      json:"cafe_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(500);not null" json:"description"`
	Location    string `gorm:"type:varchar(200);not null" json:"location"`
	Logo        string `gorm:"type:text"                  json:"logo,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Cafe) TableName() string { return "cafes" }
