package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cafe-admin/backend/internal/model"
	"cafe-admin/backend/pkg/idgen"
)

// Seed 播种固定示例数据
// 幂等：任一集合非空即跳过该集合；在进程启动时显式调用一次，
// 而不是在每个列表请求里做存在性检查
func (r *Repository) Seed(ctx context.Context, logger *zap.Logger) error {
	cafeCount, err := r.Cafe.Count(ctx)
	if err != nil {
		return fmt.Errorf("统计咖啡店失败: %w", err)
	}

	var cafes []model.Cafe
	if cafeCount == 0 {
		cafes = seedCafes()
		for i := range cafes {
			if err := r.Cafe.Create(ctx, &cafes[i]); err != nil {
				return fmt.Errorf("播种咖啡店失败: %w", err)
			}
		}
		logger.Info("已播种示例咖啡店", zap.Int("count", len(cafes)))
	} else {
		// 员工播种要引用首尾两家店，集合已有数据时从库里取
		cafes, err = r.Cafe.List(ctx)
		if err != nil {
			return fmt.Errorf("读取咖啡店失败: %w", err)
		}
	}

	empCount, err := r.Employee.Count(ctx)
	if err != nil {
		return fmt.Errorf("统计员工失败: %w", err)
	}
	if empCount > 0 || len(cafes) == 0 {
		return nil
	}

	emps, err := seedEmployees(cafes[0].CafeID, cafes[len(cafes)-1].CafeID)
	if err != nil {
		return err
	}
	for i := range emps {
		if err := r.Employee.Create(ctx, &emps[i]); err != nil {
			return fmt.Errorf("播种员工失败: %w", err)
		}
	}
	logger.Info("已播种示例员工", zap.Int("count", len(emps)))

	return nil
}

// seedCafes 五家固定示例咖啡店
func seedCafes() []model.Cafe {
	return []model.Cafe{
		{
			CafeID:      uuid.New().String(),
			Name:        "Cafe Mocha",
			Location:    "Singapore",
			Description: "A cozy cafe serving coffee and pastries in a relaxing ambiance.",
			Logo:        "https://th.bing.com/th/id/OIP.GWKrFKagojjcEaiRsjoIggAAAA?rs=1&pid=ImgDetMain&cb=idpwebpc2",
		},
		{
			CafeID:      uuid.New().String(),
			Name:        "Tiong Bahru Bakery",
			Location:    "Singapore",
			Description: "Famous for its artisanal French pastries and fresh bakes.",
			Logo:        "",
		},
		{
			CafeID:      uuid.New().String(),
			Name:        "Common Man Coffee Roasters",
			Location:    "Singapore",
			Description: "Specialty coffee roaster with brunch and quality beans sourced worldwide.",
			Logo:        "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAACAAAAAgCAMAAABEpIrGAAAAZlBMVEVVeFZXe1iSqIWdsY5nh2SnuJWLo4CFnnt4lHFVeldxkG1+l3b//+jZ3bv49NJbgFzk5cT5+drp6cfw7sxXfVmitZLz89P//t3g48D//+HK07B/m3e1w6BReFTN1bK6x6T//+xrjGgH92QmAAABAUlEQVR4AZ3TBW4sIQAA0Mfo2te63v9cdffVsSbEGi3pKPJwCIQvd4MqhlbGgrnvwVirFnQKBG/+CJZquaBNAME/dMpYbab0qjbxYaT0mAgqrQbARu+/4N7/H4I59tzb1UgHpaU3dezkBAOGRDBWmLkTbBs8+quPTTJKBsFfhQfbrk2Upq78MdfbMk8AQe7IEEFrjqnb2PHCnZAAxnYFrRuHnuw4t6N0b2PX0msS+KMR8KEzMbelttDItUIyaFEaW3qJ4Mpvv10q0gHm9nyYR/CqUHjUpQNlHOTEeQSDW5W1JgFQigdHpfZoavDPnZVTz0IKiJ/cYJBrUMktkcs034NPYOfE6/22cbEAAAAASUVORK5CYII=",
		},
		{
			CafeID:      uuid.New().String(),
			Name:        "Atlas Coffeehouse",
			Location:    "Singapore",
			Description: "Trendy cafe with rich coffee and fusion brunch dishes.",
			Logo:        "",
		},
		{
			CafeID:      uuid.New().String(),
			Name:        "The Populus Coffee & Food Co.",
			Location:    "Singapore",
			Description: "Modern cafe with specialty coffee and innovative food menu.",
			Logo:        "",
		},
	}
}

// seedEmployees 三名固定示例员工，分别挂在首尾两家店
func seedEmployees(firstCafeID, lastCafeID string) ([]model.Employee, error) {
	mk := func(name, email, phone, gender, cafeID string, year int, month time.Month, day int) (model.Employee, error) {
		id, err := idgen.NewEmployeeID()
		if err != nil {
			return model.Employee{}, fmt.Errorf("生成员工编号失败: %w", err)
		}
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return model.Employee{
			EmployeeID:     id,
			Name:           name,
			EmailAddress:   email,
			PhoneNumber:    phone,
			Gender:         gender,
			CafeID:         cafeID,
			EmploymentDate: &date,
		}, nil
	}

	teck, err := mk("Teck Wu", "teck.wu@cafemocha.com", "83456789", "Male", firstCafeID, 2024, time.May, 5)
	if err != nil {
		return nil, err
	}
	roy, err := mk("Roy Tan", "roy.tan@example.com", "83456789", "Male", lastCafeID, 2024, time.March, 21)
	if err != nil {
		return nil, err
	}
	ava, err := mk("Ava Lee", "ava.lee@example.com", "82345678", "Female", firstCafeID, 2024, time.January, 10)
	if err != nil {
		return nil, err
	}

	return []model.Employee{teck, roy, ava}, nil
}
