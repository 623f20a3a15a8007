package idgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

// 员工编号格式：前缀 UI + 7 位大写字母/数字，且后 7 位至少含一个数字。
// 生成不校验与存量编号的唯一性，由调用方（36^7 空间内碰撞概率可忽略）。

const (
	employeeIDPrefix   = "UI"
	employeeIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	employeeIDSuffix   = 7

	// maxAttempts 重试上限：单次抽样不含数字的概率约 (26/36)^7 ≈ 10%，
	// 连续 64 次全失败在实践中不可能发生
	maxAttempts = 64
)

// ErrGenerateExhausted 重试次数耗尽（仅当随机源退化时可能出现）
var ErrGenerateExhausted = errors.New("员工编号生成重试次数耗尽")

// NewEmployeeID 生成一个员工编号
func NewEmployeeID() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		suffix, err := randomSuffix()
		if err != nil {
			return "", fmt.Errorf("读取随机源失败: %w", err)
		}
		if strings.ContainsAny(suffix, "0123456789") {
			return employeeIDPrefix + suffix, nil
		}
	}
	return "", ErrGenerateExhausted
}

// randomSuffix 从字母表中独立均匀抽取 7 个字符
func randomSuffix() (string, error) {
	buf := make([]byte, employeeIDSuffix)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(employeeIDSuffix)
	for _, b := range buf {
		sb.WriteByte(employeeIDAlphabet[int(b)%len(employeeIDAlphabet)])
	}
	return sb.String(), nil
}
