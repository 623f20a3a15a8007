package repository

import (
	"context"

	"gorm.io/gorm"

	"cafe-admin/backend/internal/model"
	pkgerrors "cafe-admin/backend/pkg/errors"
)

// CafeRepository 咖啡店数据访问接口
type CafeRepository interface {
	Create(ctx context.Context, cafe *model.Cafe) error
	GetByID(ctx context.Context, id string) (*model.Cafe, error)
	List(ctx context.Context) ([]model.Cafe, error)
	Update(ctx context.Context, cafe *model.Cafe) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// cafeRepo CafeRepository 的 GORM 实现
type cafeRepo struct {
	db *gorm.DB
}

// NewCafeRepo 创建 CafeRepository 实例
func NewCafeRepo(db *gorm.DB) CafeRepository {
	return &cafeRepo{db: db}
}

func (r *cafeRepo) Create(ctx context.Context, cafe *model.Cafe) error {
	return r.db.WithContext(ctx).Create(cafe).Error
}

func (r *cafeRepo) GetByID(ctx context.Context, id string) (*model.Cafe, error) {
	var cafe model.Cafe
	err := r.db.WithContext(ctx).
		Where("cafe_id = ?", id).
		First(&cafe).Error
	if err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *cafeRepo) List(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&cafes).Error
	return cafes, err
}

// Update 整条覆盖；记录已被并发修改或删除时报 ErrOptimisticLock
// 使用 map 以允许将 logo 覆盖为空串
func (r *cafeRepo) Update(ctx context.Context, cafe *model.Cafe) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cafe{}).
		Where("cafe_id = ?", cafe.CafeID).
		Updates(map[string]interface{}{
			"name":        cafe.Name,
			"description": cafe.Description,
			"location":    cafe.Location,
			"logo":        cafe.Logo,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *cafeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("cafe_id = ?", id).
		Delete(&model.Cafe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cafeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cafe{}).Count(&count).Error
	return count, err
}
