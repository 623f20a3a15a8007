package service

import (
	"context"
	"encoding/json"
	"time"

	"cafe-admin/backend/pkg/redis"
)

// 列表投影缓存键；任一实体变更时两个键一起失效
// （咖啡店改名影响员工投影，员工变动影响咖啡店人数）
const (
	cacheKeyCafeList     = "cache:cafes:list"
	cacheKeyEmployeeList = "cache:employees:list"
)

// listCache 可降级的列表投影缓存
// client 为 nil 时所有操作退化为未命中/空操作
type listCache struct {
	client *redis.Client
	ttl    time.Duration
}

// get 读取并反序列化缓存；未命中或损坏返回 false
func (c *listCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}
	raw, ok := c.client.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// 缓存内容损坏时当作未命中，下一次写入会覆盖
		return false
	}
	return true
}

// set 序列化并写入缓存；失败静默（降级为直读）
func (c *listCache) set(ctx context.Context, key string, val interface{}) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, string(raw), c.ttl)
}

// invalidate 变更后失效两个列表投影
func (c *listCache) invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, cacheKeyCafeList, cacheKeyEmployeeList)
}
