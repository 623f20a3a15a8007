package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求（编号由服务端生成，客户端传入的 id 被忽略）
type CreateEmployeeRequest struct {
	Name           string `json:"name"           binding:"required,min=1,max=100"`
	EmailAddress   string `json:"emailAddress"   binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber"    binding:"required,sgphone"`
	Gender         string `json:"gender"         binding:"required,oneof=Male Female"`
	CafeID         string `json:"cafeId"         binding:"omitempty,uuid"`
	EmploymentDate *Date  `json:"employmentDate"`
}

// UpdateEmployeeRequest 更新员工请求（整条记录覆盖，ID 必须与路径一致）
type UpdateEmployeeRequest struct {
	ID             string `json:"id"             binding:"required"`
	Name           string `json:"name"           binding:"required,min=1,max=100"`
	EmailAddress   string `json:"emailAddress"   binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber"    binding:"required,sgphone"`
	Gender         string `json:"gender"         binding:"required,oneof=Male Female"`
	CafeID         string `json:"cafeId"         binding:"omitempty,uuid"`
	EmploymentDate *Date  `json:"employmentDate"`
}

// EmployeeResponse 员工信息响应
// CafeName/DaysWorked 为投影字段，按请求实时计算，不落库
type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmailAddress   string `json:"emailAddress"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         string `json:"gender"`
	CafeID         string `json:"cafeId,omitempty"`
	EmploymentDate *Date  `json:"employmentDate,omitempty"`
	CafeName       string `json:"cafeName"`
	DaysWorked     int    `json:"daysWorked"`
}
