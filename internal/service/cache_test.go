package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cafe-admin/backend/internal/dto"
	"cafe-admin/backend/internal/repository"
	"cafe-admin/backend/pkg/redis"
)

func newTestCache(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return redis.NewClientFromRedis(rdb, zap.NewNop()), mr
}

func TestListCache_RoundTrip(t *testing.T) {
	client, _ := newTestCache(t)
	cache := &listCache{client: client, ttl: time.Minute}
	ctx := context.Background()

	val := []dto.CafeResponse{{ID: "cafe-a", Name: "Alpha", EmployeeCount: 2}}
	cache.set(ctx, cacheKeyCafeList, val)

	var got []dto.CafeResponse
	if !cache.get(ctx, cacheKeyCafeList, &got) {
		t.Fatal("期望缓存命中")
	}
	if len(got) != 1 || got[0].Name != "Alpha" || got[0].EmployeeCount != 2 {
		t.Errorf("缓存内容不一致: %+v", got)
	}
}

func TestListCache_InvalidateClearsBothKeys(t *testing.T) {
	client, mr := newTestCache(t)
	cache := &listCache{client: client, ttl: time.Minute}
	ctx := context.Background()

	cache.set(ctx, cacheKeyCafeList, []dto.CafeResponse{{ID: "a"}})
	cache.set(ctx, cacheKeyEmployeeList, []dto.EmployeeResponse{{ID: "UI0000001"}})

	cache.invalidate(ctx)

	if mr.Exists(cacheKeyCafeList) || mr.Exists(cacheKeyEmployeeList) {
		t.Error("失效后两个键都应被删除")
	}
}

func TestListCache_CorruptedEntryIsMiss(t *testing.T) {
	client, mr := newTestCache(t)
	cache := &listCache{client: client, ttl: time.Minute}

	mr.Set(cacheKeyCafeList, "{not json")

	var got []dto.CafeResponse
	if cache.get(context.Background(), cacheKeyCafeList, &got) {
		t.Error("损坏内容应按未命中处理")
	}
}

func TestListCache_NilClientDegrades(t *testing.T) {
	cache := &listCache{client: nil, ttl: time.Minute}
	ctx := context.Background()

	var got []dto.CafeResponse
	if cache.get(ctx, cacheKeyCafeList, &got) {
		t.Error("无缓存客户端时应视为未命中")
	}
	// 空操作不 panic 即可
	cache.set(ctx, cacheKeyCafeList, []dto.CafeResponse{})
	cache.invalidate(ctx)
}

// 变更后列表应重新计算而非命中旧缓存
func TestCafeService_MutationInvalidatesCache(t *testing.T) {
	client, _ := newTestCache(t)
	cafeRepo := newMockCafeRepo()
	empRepo := newMockEmployeeRepo()
	repo := &repository.Repository{Cafe: cafeRepo, Employee: empRepo}
	svc := NewCafeService(testConfig(), repo, client, zap.NewNop())
	ctx := context.Background()

	addCafe(cafeRepo, "cafe-a", "Alpha")
	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("期望1家，实际=%d", len(first))
	}

	if _, err := svc.Create(ctx, &dto.CreateCafeRequest{
		Name: "Beta", Description: "x", Location: "Singapore",
	}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("变更后列表应包含2家，实际=%d", len(second))
	}
}
