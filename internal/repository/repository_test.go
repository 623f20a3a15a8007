package repository

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cafe-admin/backend/internal/model"
	pkgerrors "cafe-admin/backend/pkg/errors"
)

// newTestDB 每个测试一个独立的内存库
// 内存库随连接消失，必须限制为单连接
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Cafe{}, &model.Employee{}); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}
	return db
}

// ── Seed 测试 ──

func TestSeed_PopulatesFixedSampleData(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Seed(ctx, zap.NewNop()); err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	cafes, err := repo.Cafe.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(cafes) != 5 {
		t.Fatalf("期望5家咖啡店，实际=%d", len(cafes))
	}
	wantNames := []string{
		"Cafe Mocha",
		"Tiong Bahru Bakery",
		"Common Man Coffee Roasters",
		"Atlas Coffeehouse",
		"The Populus Coffee & Food Co.",
	}
	for i, want := range wantNames {
		if cafes[i].Name != want {
			t.Errorf("第%d家期望%q，实际=%q", i, want, cafes[i].Name)
		}
	}

	emps, err := repo.Employee.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(emps) != 3 {
		t.Fatalf("期望3名员工，实际=%d", len(emps))
	}

	// 首店2人、末店1人
	first, last := cafes[0].CafeID, cafes[len(cafes)-1].CafeID
	counts := map[string]int{}
	for _, e := range emps {
		counts[e.CafeID]++
	}
	if counts[first] != 2 {
		t.Errorf("期望首店2名员工，实际=%d", counts[first])
	}
	if counts[last] != 1 {
		t.Errorf("期望末店1名员工，实际=%d", counts[last])
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Seed(ctx, zap.NewNop()); err != nil {
		t.Fatalf("首次 Seed 应成功: %v", err)
	}
	if err := repo.Seed(ctx, zap.NewNop()); err != nil {
		t.Fatalf("二次 Seed 应成功: %v", err)
	}

	cafeCount, _ := repo.Cafe.Count(ctx)
	empCount, _ := repo.Employee.Count(ctx)
	if cafeCount != 5 || empCount != 3 {
		t.Errorf("重复播种不应新增记录: cafes=%d employees=%d", cafeCount, empCount)
	}
}

// ── Cafe CRUD 测试 ──

func TestCafeRepo_UpdateMissing_OptimisticLock(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	err := repo.Cafe.Update(context.Background(), &model.Cafe{
		CafeID: "11111111-1111-1111-1111-111111111111",
		Name:   "Ghost Cafe",
	})
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("期望 ErrOptimisticLock，实际: %v", err)
	}
}

func TestCafeRepo_UpdateClearsLogo(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	cafe := &model.Cafe{
		CafeID:      "22222222-2222-2222-2222-222222222222",
		Name:        "Brew Lab",
		Description: "x",
		Location:    "Singapore",
		Logo:        "http://example.com/logo.png",
	}
	if err := repo.Cafe.Create(ctx, cafe); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	cafe.Logo = ""
	if err := repo.Cafe.Update(ctx, cafe); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, err := repo.Cafe.GetByID(ctx, cafe.CafeID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Logo != "" {
		t.Errorf("整条覆盖应能清空 logo，实际=%q", got.Logo)
	}
}

func TestCafeRepo_DeleteMissing_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	err := repo.Cafe.Delete(context.Background(), "33333333-3333-3333-3333-333333333333")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

// ── Employee CRUD 测试 ──

func TestEmployeeRepo_GetByEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	emp := &model.Employee{
		EmployeeID:   "UI1234ABC",
		Name:         "Lin Wei",
		EmailAddress: "lin.wei@example.com",
		PhoneNumber:  "91234567",
		Gender:       "Female",
	}
	if err := repo.Employee.Create(ctx, emp); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := repo.Employee.GetByEmail(ctx, "lin.wei@example.com")
	if err != nil {
		t.Fatalf("GetByEmail 应成功: %v", err)
	}
	if got.EmployeeID != "UI1234ABC" {
		t.Errorf("期望UI1234ABC，实际=%s", got.EmployeeID)
	}

	if _, err := repo.Employee.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestEmployeeRepo_UpdateClearsOptionalFields(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	emp := &model.Employee{
		EmployeeID:   "UI7A8B9C0",
		Name:         "Mei Chen",
		EmailAddress: "mei.chen@example.com",
		PhoneNumber:  "81112222",
		Gender:       "Female",
		CafeID:       "44444444-4444-4444-4444-444444444444",
	}
	if err := repo.Employee.Create(ctx, emp); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	emp.CafeID = ""
	emp.EmploymentDate = nil
	if err := repo.Employee.Update(ctx, emp); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, err := repo.Employee.GetByID(ctx, emp.EmployeeID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.CafeID != "" {
		t.Errorf("整条覆盖应能清空 cafe_id，实际=%q", got.CafeID)
	}
	if got.EmploymentDate != nil {
		t.Errorf("整条覆盖应能清空 employment_date，实际=%v", got.EmploymentDate)
	}
}
