package model

import "time"

// Employee 员工表 — 对应 employees
// EmployeeID 为服务端生成的可读编号（UI + 7 位字母数字，至少一个数字），
// 创建后不可变；CafeID 为可选的咖啡店引用，空串表示未分配
type Employee struct {
	EmployeeID     string     `gorm:"type:varchar(9);primaryKey"  json:"employee_id"`
	Name           string     `gorm:"type:varchar(100);not null"  json:"name"`
	EmailAddress   string     `gorm:"type:varchar(255);not null;index" json:"email_address"`
	PhoneNumber    string     `gorm:"type:varchar(8);not null"    json:"phone_number"`
	Gender         string     `gorm:"type:varchar(10);not null"   json:"gender"`
	CafeID         string     `gorm:"type:varchar(36);index"      json:"cafe_id,omitempty"`
	EmploymentDate *time.Time `gorm:"type:date"                   json:"employment_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
