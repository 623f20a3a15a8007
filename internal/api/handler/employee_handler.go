package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/service"
	pkgerrors "cafe-admin/backend/pkg/errors"
	"cafe-admin/backend/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// ListEmployees 获取员工列表（含 cafeName / daysWorked 投影）
// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.empSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "An error occurred while listing employee data.", err.Error(), nil)
		return
	}

	response.OK(c, employees)
}

// GetEmployee 获取员工详情
// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	emp, err := h.empSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEmployeeError(c, err, nil)
		return
	}

	response.OK(c, emp)
}

// CreateEmployee 创建员工（编号由服务端生成）
// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		// 邮箱重复按约定不是 HTTP 错误：200 + conflict 信封，回显提交的记录
		if errors.Is(err, service.ErrEmployeeEmailExists) {
			response.Conflict(c, "Employee with the same email already exists.", &req)
			return
		}
		if errors.Is(err, service.ErrCafeRefNotFound) {
			response.BadRequest(c, "引用的咖啡店不存在")
			return
		}
		response.InternalError(c, "An error occurred while saving employee data.", err.Error(), &req)
		return
	}

	response.Created(c, "Employee added successfully.", emp)
}

// UpdateEmployee 更新员工（整条覆盖，编号不可变）
// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	// 路径与正文 id 不一致时在触达存储前拒绝
	if c.Param("id") != req.ID {
		response.BadRequest(c, "路径与正文的 id 不一致")
		return
	}

	emp, err := h.empSvc.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCafeRefNotFound) {
			response.BadRequest(c, "引用的咖啡店不存在")
			return
		}
		h.handleEmployeeError(c, err, &req)
		return
	}

	response.Created(c, "Employee updated successfully.", emp)
}

// DeleteEmployee 删除员工
// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.empSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleEmployeeError(c, err, nil)
		return
	}

	response.NoContent(c)
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error, echo interface{}) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c)
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.InternalError(c, "An error occurred while updating employee data.", err.Error(), echo)
	default:
		response.InternalError(c, "An error occurred while updating employee data.", err.Error(), echo)
	}
}
