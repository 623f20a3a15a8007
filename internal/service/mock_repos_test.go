package service

import (
	"context"

	"gorm.io/gorm"

	"cafe-admin/backend/internal/model"
	pkgerrors "cafe-admin/backend/pkg/errors"
)

// ── Mock CafeRepository ──

// mockCafeRepo 用有序切片模拟插入顺序（List 按创建顺序返回）
type mockCafeRepo struct {
	cafes     map[string]*model.Cafe
	order     []string
	createErr error
	listErr   error
}

func newMockCafeRepo() *mockCafeRepo {
	return &mockCafeRepo{cafes: make(map[string]*model.Cafe)}
}

func (m *mockCafeRepo) Create(_ context.Context, cafe *model.Cafe) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.cafes[cafe.CafeID] = cafe
	m.order = append(m.order, cafe.CafeID)
	return nil
}

func (m *mockCafeRepo) GetByID(_ context.Context, id string) (*model.Cafe, error) {
	if c, ok := m.cafes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCafeRepo) List(_ context.Context) ([]model.Cafe, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Cafe, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.cafes[id])
	}
	return result, nil
}

func (m *mockCafeRepo) Update(_ context.Context, cafe *model.Cafe) error {
	if _, ok := m.cafes[cafe.CafeID]; !ok {
		return pkgerrors.ErrOptimisticLock
	}
	m.cafes[cafe.CafeID] = cafe
	return nil
}

func (m *mockCafeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.cafes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.cafes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockCafeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.cafes)), nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	order     []string
	createErr error
	listErr   error
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.employees[emp.EmployeeID] = emp
	m.order = append(m.order, emp.EmployeeID)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, id := range m.order {
		if m.employees[id].EmailAddress == email {
			return m.employees[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Employee, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.employees[id])
	}
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	if _, ok := m.employees[emp.EmployeeID]; !ok {
		return pkgerrors.ErrOptimisticLock
	}
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.employees, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}
