package service

import (
	"go.uber.org/zap"

	"cafe-admin/backend/config"
	"cafe-admin/backend/internal/repository"
	"cafe-admin/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Cafe     CafeService
	Employee EmployeeService
	Export   ExportService
}

// NewService 创建 Service 聚合
// cache 可为 nil（Redis 不可用时降级为直读数据库）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	cafeSvc := NewCafeService(cfg, repo, cache, logger)
	empSvc := NewEmployeeService(cfg, repo, cache, logger)
	return &Service{
		Cafe:     cafeSvc,
		Employee: empSvc,
		Export:   NewExportService(cafeSvc, empSvc, logger),
	}
}
