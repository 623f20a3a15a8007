package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin/backend/internal/service"
	"cafe-admin/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCafes 导出咖啡店网格为 Excel
// GET /api/export/cafes
func (h *ExportHandler) ExportCafes(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportCafes(c.Request.Context())
	if err != nil {
		response.InternalError(c, "An error occurred while exporting cafe data.", err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportEmployees 导出员工网格为 Excel
// GET /api/export/employees
func (h *ExportHandler) ExportEmployees(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportEmployees(c.Request.Context())
	if err != nil {
		response.InternalError(c, "An error occurred while exporting employee data.", err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
