package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"cafe-admin/backend/config"
	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/model"
	"cafe-admin/backend/internal/repository"
	pkgerrors "cafe-admin/backend/pkg/errors"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{TTL: 30 * time.Second},
		Feature: config.FeatureConfig{
			ClampMinDaysWorked:       true,
			SortCafesByEmployeeCount: true,
		},
	}
}

func setupTestCafeService(cfg *config.Config) (CafeService, *mockCafeRepo, *mockEmployeeRepo) {
	cafeRepo := newMockCafeRepo()
	empRepo := newMockEmployeeRepo()
	repo := &repository.Repository{Cafe: cafeRepo, Employee: empRepo}
	svc := NewCafeService(cfg, repo, nil, zap.NewNop())
	return svc, cafeRepo, empRepo
}

func addCafe(repo *mockCafeRepo, id, name string) {
	repo.cafes[id] = &model.Cafe{CafeID: id, Name: name, Description: "x", Location: "Singapore"}
	repo.order = append(repo.order, id)
}

func addEmployee(repo *mockEmployeeRepo, id, email, cafeID string, date *time.Time) {
	repo.employees[id] = &model.Employee{
		EmployeeID:     id,
		Name:           "Test " + id,
		EmailAddress:   email,
		PhoneNumber:    "81234567",
		Gender:         "Male",
		CafeID:         cafeID,
		EmploymentDate: date,
	}
	repo.order = append(repo.order, id)
}

// ── List 测试 ──

func TestCafeService_List_EmployeeCountProjection(t *testing.T) {
	svc, cafeRepo, empRepo := setupTestCafeService(testConfig())
	addCafe(cafeRepo, "cafe-a", "Alpha")
	addCafe(cafeRepo, "cafe-b", "Beta")
	addEmployee(empRepo, "UI0000001", "a@example.com", "cafe-b", nil)
	addEmployee(empRepo, "UI0000002", "b@example.com", "cafe-b", nil)
	addEmployee(empRepo, "UI0000003", "c@example.com", "", nil)

	cafes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(cafes) != 2 {
		t.Fatalf("期望2家，实际=%d", len(cafes))
	}
	// 按员工数降序：Beta(2) 在前
	if cafes[0].Name != "Beta" || cafes[0].EmployeeCount != 2 {
		t.Errorf("期望 Beta/2 在前，实际=%s/%d", cafes[0].Name, cafes[0].EmployeeCount)
	}
	if cafes[1].Name != "Alpha" || cafes[1].EmployeeCount != 0 {
		t.Errorf("期望 Alpha/0 在后，实际=%s/%d", cafes[1].Name, cafes[1].EmployeeCount)
	}
}

func TestCafeService_List_StableOrderOnTies(t *testing.T) {
	svc, cafeRepo, _ := setupTestCafeService(testConfig())
	addCafe(cafeRepo, "cafe-a", "Alpha")
	addCafe(cafeRepo, "cafe-b", "Beta")
	addCafe(cafeRepo, "cafe-c", "Gamma")

	cafes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	// 全部并列 0 人，保持原始顺序
	wantOrder := []string{"Alpha", "Beta", "Gamma"}
	for i, want := range wantOrder {
		if cafes[i].Name != want {
			t.Errorf("第%d位期望%s，实际=%s", i, want, cafes[i].Name)
		}
	}
}

func TestCafeService_List_SortDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Feature.SortCafesByEmployeeCount = false
	svc, cafeRepo, empRepo := setupTestCafeService(cfg)
	addCafe(cafeRepo, "cafe-a", "Alpha")
	addCafe(cafeRepo, "cafe-b", "Beta")
	addEmployee(empRepo, "UI0000001", "a@example.com", "cafe-b", nil)

	cafes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	// 开关关闭时维持创建顺序，即便 Beta 人数更多
	if cafes[0].Name != "Alpha" {
		t.Errorf("排序关闭时期望 Alpha 在前，实际=%s", cafes[0].Name)
	}
}

// ── Create 测试 ──

func TestCafeService_Create_AssignsID(t *testing.T) {
	svc, _, _ := setupTestCafeService(testConfig())

	req := &dto.CreateCafeRequest{
		Name:        "Brew Lab",
		Description: "x",
		Location:    "Singapore",
	}
	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.ID == "" {
		t.Fatal("期望服务端分配ID")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Name != "Brew Lab" || got.Description != "x" || got.Location != "Singapore" {
		t.Errorf("回读字段不一致: %+v", got)
	}
}

// ── GetByID / Delete 测试 ──

func TestCafeService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestCafeService(testConfig())

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCafeNotFound) {
		t.Errorf("期望 ErrCafeNotFound，实际: %v", err)
	}
}

func TestCafeService_Delete_ThenGone(t *testing.T) {
	svc, cafeRepo, _ := setupTestCafeService(testConfig())
	addCafe(cafeRepo, "cafe-a", "Alpha")

	if err := svc.Delete(context.Background(), "cafe-a"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "cafe-a"); !errors.Is(err, ErrCafeNotFound) {
		t.Errorf("删除后应查不到: %v", err)
	}
	if err := svc.Delete(context.Background(), "cafe-a"); !errors.Is(err, ErrCafeNotFound) {
		t.Errorf("重复删除期望 ErrCafeNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestCafeService_Update_MissingRecord_OptimisticLock(t *testing.T) {
	svc, _, _ := setupTestCafeService(testConfig())

	req := &dto.UpdateCafeRequest{
		ID:          "55555555-5555-5555-5555-555555555555",
		Name:        "Ghost",
		Description: "x",
		Location:    "Singapore",
	}
	_, err := svc.Update(context.Background(), req)
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("期望 ErrOptimisticLock，实际: %v", err)
	}
}
