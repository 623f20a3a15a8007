package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cafe-admin/backend/config"
	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/model"
	"cafe-admin/backend/internal/repository"
	"cafe-admin/backend/pkg/redis"
)

// ── 咖啡店模块业务错误 ──

var (
	ErrCafeNotFound = errors.New("咖啡店不存在")
)

// CafeService 咖啡店业务接口
type CafeService interface {
	List(ctx context.Context) ([]dto.CafeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CafeResponse, error)
	Create(ctx context.Context, req *dto.CreateCafeRequest) (*dto.CafeResponse, error)
	Update(ctx context.Context, req *dto.UpdateCafeRequest) (*dto.CafeResponse, error)
	Delete(ctx context.Context, id string) error
}

type cafeService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *listCache
	logger *zap.Logger
}

// NewCafeService 创建 CafeService 实例
func NewCafeService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) CafeService {
	return &cafeService{
		cfg:    cfg,
		repo:   repo,
		cache:  &listCache{client: cache, ttl: cfg.Cache.TTL},
		logger: logger,
	}
}

// ────────────────────── List ──────────────────────

// List 返回全部咖啡店及投影字段 employeeCount
// 两次查询之间没有事务快照，并发删除可能造成单次响应内的短暂不一致（可接受）
func (s *cafeService) List(ctx context.Context) ([]dto.CafeResponse, error) {
	var cached []dto.CafeResponse
	if s.cache.get(ctx, cacheKeyCafeList, &cached) {
		return cached, nil
	}

	cafes, err := s.repo.Cafe.List(ctx)
	if err != nil {
		s.logger.Error("列出咖啡店失败", zap.Error(err))
		return nil, err
	}
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}

	counts := make(map[string]int, len(cafes))
	for _, e := range employees {
		if e.CafeID != "" {
			counts[e.CafeID]++
		}
	}

	result := make([]dto.CafeResponse, 0, len(cafes))
	for i := range cafes {
		resp := toCafeResponse(&cafes[i], counts[cafes[i].CafeID])
		result = append(result, *resp)
	}

	// 按员工数降序；排序历史上有无两个版本并存，故置于开关之后
	// SliceStable 保证并列时维持原始顺序
	if s.cfg.Feature.SortCafesByEmployeeCount {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EmployeeCount > result[j].EmployeeCount
		})
	}

	s.cache.set(ctx, cacheKeyCafeList, result)
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *cafeService) GetByID(ctx context.Context, id string) (*dto.CafeResponse, error) {
	cafe, err := s.repo.Cafe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		s.logger.Error("查询咖啡店失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toCafeResponse(cafe, 0), nil
}

// ────────────────────── Create ──────────────────────

// Create 新建咖啡店并分配 UUID；名称无唯一性约束
func (s *cafeService) Create(ctx context.Context, req *dto.CreateCafeRequest) (*dto.CafeResponse, error) {
	cafe := &model.Cafe{
		CafeID:      uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Logo:        req.Logo,
	}

	if err := s.repo.Cafe.Create(ctx, cafe); err != nil {
		s.logger.Error("创建咖啡店失败", zap.Error(err))
		return nil, err
	}

	s.cache.invalidate(ctx)
	return toCafeResponse(cafe, 0), nil
}

// ────────────────────── Update ──────────────────────

// Update 整条记录覆盖
// 记录不存在/被并发修改时透传 ErrOptimisticLock，由 Handler 映射为 500 信封
func (s *cafeService) Update(ctx context.Context, req *dto.UpdateCafeRequest) (*dto.CafeResponse, error) {
	cafe := &model.Cafe{
		CafeID:      req.ID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Logo:        req.Logo,
	}

	if err := s.repo.Cafe.Update(ctx, cafe); err != nil {
		s.logger.Error("更新咖啡店失败", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	s.cache.invalidate(ctx)
	return toCafeResponse(cafe, 0), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除咖啡店；不级联处理员工的悬空引用（cafeName 投影回退为空串）
func (s *cafeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Cafe.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCafeNotFound
		}
		s.logger.Error("删除咖啡店失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.cache.invalidate(ctx)
	return nil
}

// ── 内部辅助方法 ──

func toCafeResponse(cafe *model.Cafe, employeeCount int) *dto.CafeResponse {
	return &dto.CafeResponse{
		ID:            cafe.CafeID,
		Name:          cafe.Name,
		Description:   cafe.Description,
		Location:      cafe.Location,
		Logo:          cafe.Logo,
		EmployeeCount: employeeCount,
	}
}
