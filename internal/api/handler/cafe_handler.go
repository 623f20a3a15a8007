package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/service"
	pkgerrors "cafe-admin/backend/pkg/errors"
	"cafe-admin/backend/pkg/response"
)

// CafeHandler 咖啡店模块 HTTP 处理器
type CafeHandler struct {
	cafeSvc service.CafeService
}

// NewCafeHandler 创建 CafeHandler
func NewCafeHandler(cafeSvc service.CafeService) *CafeHandler {
	return &CafeHandler{cafeSvc: cafeSvc}
}

// ListCafes 获取咖啡店列表（含 employeeCount 投影）
// GET /api/cafes
func (h *CafeHandler) ListCafes(c *gin.Context) {
	cafes, err := h.cafeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "An error occurred while listing cafe data.", err.Error(), nil)
		return
	}

	// 列表接口直接返回数组本体，不套信封
	response.OK(c, cafes)
}

// GetCafe 获取咖啡店详情
// GET /api/cafes/:id
func (h *CafeHandler) GetCafe(c *gin.Context) {
	cafe, err := h.cafeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCafeError(c, err, nil)
		return
	}

	response.OK(c, cafe)
}

// CreateCafe 创建咖啡店
// POST /api/cafes
func (h *CafeHandler) CreateCafe(c *gin.Context) {
	var req dto.CreateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	cafe, err := h.cafeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "An error occurred while saving cafe data.", err.Error(), &req)
		return
	}

	response.Created(c, "Cafe added successfully.", cafe)
}

// UpdateCafe 更新咖啡店（整条覆盖）
// PUT /api/cafes/:id
func (h *CafeHandler) UpdateCafe(c *gin.Context) {
	var req dto.UpdateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	// 路径与正文 id 不一致时在触达存储前拒绝
	if c.Param("id") != req.ID {
		response.BadRequest(c, "路径与正文的 id 不一致")
		return
	}

	cafe, err := h.cafeSvc.Update(c.Request.Context(), &req)
	if err != nil {
		h.handleCafeError(c, err, &req)
		return
	}

	// 沿用前端既有约定：更新成功同样返回 201 信封
	response.Created(c, "Cafe updated successfully.", cafe)
}

// DeleteCafe 删除咖啡店
// DELETE /api/cafes/:id
func (h *CafeHandler) DeleteCafe(c *gin.Context) {
	if err := h.cafeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCafeError(c, err, nil)
		return
	}

	response.NoContent(c)
}

// handleCafeError 统一处理咖啡店模块业务错误
// 乐观锁冲突（含更新不存在的记录）映射为 500 信封并回显提交的记录
func (h *CafeHandler) handleCafeError(c *gin.Context, err error, echo interface{}) {
	switch {
	case errors.Is(err, service.ErrCafeNotFound):
		response.NotFound(c)
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.InternalError(c, "An error occurred while updating cafe data.", err.Error(), echo)
	default:
		response.InternalError(c, "An error occurred while updating cafe data.", err.Error(), echo)
	}
}
