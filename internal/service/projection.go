package service

import "time"

// 投影字段按"今天"在固定 UTC+8（新加坡）时区计算，与部署时区无关
var fixedZone = time.FixedZone("UTC+8", 8*60*60)

// daysWorked 入职日期到今天的整数天差（按日历日，向下取整）
// 未设置入职日期返回 0；clamp 开启时有日期的结果至少为 1
// （历史版本在是否钳位上摇摆过，因此作为显式开关传入）
func daysWorked(employmentDate *time.Time, now time.Time, clamp bool) int {
	if employmentDate == nil {
		return 0
	}

	local := now.In(fixedZone)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	started := time.Date(
		employmentDate.Year(), employmentDate.Month(), employmentDate.Day(),
		0, 0, 0, 0, time.UTC,
	)

	days := int(today.Sub(started).Hours() / 24)
	if clamp && days < 1 {
		return 1
	}
	return days
}
