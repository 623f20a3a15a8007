package handler

import "cafe-admin/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Cafe     *CafeHandler
	Employee *EmployeeHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Cafe:     NewCafeHandler(svc.Cafe),
		Employee: NewEmployeeHandler(svc.Employee),
		Export:   NewExportHandler(svc.Export),
	}
}
