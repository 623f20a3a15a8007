package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cafe-admin/backend/config"
	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/model"
	"cafe-admin/backend/internal/repository"
	"cafe-admin/backend/pkg/idgen"
	"cafe-admin/backend/pkg/redis"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound    = errors.New("员工不存在")
	ErrEmployeeEmailExists = errors.New("相同邮箱的员工已存在")
	ErrCafeRefNotFound     = errors.New("引用的咖啡店不存在")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *listCache
	logger *zap.Logger
	now    func() time.Time // 可注入时钟，daysWorked 测试用
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) EmployeeService {
	return &employeeService{
		cfg:    cfg,
		repo:   repo,
		cache:  &listCache{client: cache, ttl: cfg.Cache.TTL},
		logger: logger,
		now:    time.Now,
	}
}

// ────────────────────── List ──────────────────────

// List 返回全部员工及投影字段 cafeName / daysWorked，按 daysWorked 降序
// cafeId 悬空（所指店已被删除）时 cafeName 回退为空串
func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var cached []dto.EmployeeResponse
	if s.cache.get(ctx, cacheKeyEmployeeList, &cached) {
		return cached, nil
	}

	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}
	cafes, err := s.repo.Cafe.List(ctx)
	if err != nil {
		s.logger.Error("列出咖啡店失败", zap.Error(err))
		return nil, err
	}

	names := make(map[string]string, len(cafes))
	for i := range cafes {
		names[cafes[i].CafeID] = cafes[i].Name
	}

	now := s.now()
	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		resp := toEmployeeResponse(e)
		resp.CafeName = names[e.CafeID]
		resp.DaysWorked = daysWorked(e.EmploymentDate, now, s.cfg.Feature.ClampMinDaysWorked)
		result = append(result, *resp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysWorked > result[j].DaysWorked
	})

	s.cache.set(ctx, cacheKeyEmployeeList, result)
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// ────────────────────── Create ──────────────────────

// Create 新建员工
// 邮箱唯一性仅在创建时校验（与历史行为一致）；重复时返回 ErrEmployeeEmailExists，
// 由 Handler 映射为 200 conflict 信封而非 HTTP 错误
func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.Employee.GetByEmail(ctx, req.EmailAddress); err == nil {
		return nil, ErrEmployeeEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询员工邮箱失败", zap.Error(err))
		return nil, err
	}

	if err := s.checkCafeRef(ctx, req.CafeID); err != nil {
		return nil, err
	}

	id, err := idgen.NewEmployeeID()
	if err != nil {
		s.logger.Error("生成员工编号失败", zap.Error(err))
		return nil, err
	}

	emp := &model.Employee{
		EmployeeID:     id,
		Name:           req.Name,
		EmailAddress:   req.EmailAddress,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		CafeID:         req.CafeID,
		EmploymentDate: dateToTime(req.EmploymentDate),
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	s.cache.invalidate(ctx)
	return toEmployeeResponse(emp), nil
}

// ────────────────────── Update ──────────────────────

// Update 整条记录覆盖；编号不可变
// 不校验邮箱唯一性（仅创建时校验）；记录不存在/被并发修改时透传 ErrOptimisticLock
func (s *employeeService) Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := s.checkCafeRef(ctx, req.CafeID); err != nil {
		return nil, err
	}

	emp := &model.Employee{
		EmployeeID:     req.ID,
		Name:           req.Name,
		EmailAddress:   req.EmailAddress,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		CafeID:         req.CafeID,
		EmploymentDate: dateToTime(req.EmploymentDate),
	}

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("更新员工失败", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	s.cache.invalidate(ctx)
	return toEmployeeResponse(emp), nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.cache.invalidate(ctx)
	return nil
}

// ── 内部辅助方法 ──

// checkCafeRef 写入时校验 cafeId 引用存在；空串（未分配）直接放行
func (s *employeeService) checkCafeRef(ctx context.Context, cafeID string) error {
	if cafeID == "" {
		return nil
	}
	if _, err := s.repo.Cafe.GetByID(ctx, cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCafeRefNotFound
		}
		s.logger.Error("查询咖啡店失败", zap.String("id", cafeID), zap.Error(err))
		return err
	}
	return nil
}

func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:           emp.EmployeeID,
		Name:         emp.Name,
		EmailAddress: emp.EmailAddress,
		PhoneNumber:  emp.PhoneNumber,
		Gender:       emp.Gender,
		CafeID:       emp.CafeID,
	}
	if emp.EmploymentDate != nil {
		resp.EmploymentDate = &dto.Date{Time: *emp.EmploymentDate}
	}
	return resp
}

func dateToTime(d *dto.Date) *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
