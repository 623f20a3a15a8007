package repository

import (
	"context"

	"gorm.io/gorm"

	"cafe-admin/backend/internal/model"
	pkgerrors "cafe-admin/backend/pkg/errors"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("email_address = ?", email).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&emps).Error
	return emps, err
}

// Update 整条覆盖；记录已被并发修改或删除时报 ErrOptimisticLock
// 使用 map 以允许清空 cafe_id / employment_date
func (r *employeeRepo) Update(ctx context.Context, emp *model.Employee) error {
	res := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", emp.EmployeeID).
		Updates(map[string]interface{}{
			"name":            emp.Name,
			"email_address":   emp.EmailAddress,
			"phone_number":    emp.PhoneNumber,
			"gender":          emp.Gender,
			"cafe_id":         emp.CafeID,
			"employment_date": emp.EmploymentDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employeeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).Count(&count).Error
	return count, err
}
