package dto

// ── 咖啡店模块 DTO ──
// 对外 JSON 键沿用前端既有的 camelCase 约定

// CreateCafeRequest 创建咖啡店请求（ID 由服务端分配）
type CreateCafeRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,max=500"`
	Location    string `json:"location"    binding:"required,max=200"`
	Logo        string `json:"logo"`
}

// UpdateCafeRequest 更新咖啡店请求（整条记录覆盖，ID 必须与路径一致）
type UpdateCafeRequest struct {
	ID          string `json:"id"          binding:"required,uuid"`
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,max=500"`
	Location    string `json:"location"    binding:"required,max=200"`
	Logo        string `json:"logo"`
}

// CafeResponse 咖啡店信息响应
// EmployeeCount 为投影字段，按请求实时计算，不落库
type CafeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Logo          string `json:"logo"`
	EmployeeCount int    `json:"employeeCount"`
}
