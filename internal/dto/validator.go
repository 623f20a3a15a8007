package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 新加坡手机号：8 位数字且以 8 或 9 开头
var sgPhonePattern = regexp.MustCompile(`^[89]\d{7}$`)

// RegisterValidators 在 gin 的校验引擎上注册自定义规则
// binding tag 无法表达正则，参见 Employee.PhoneNumber 的 sgphone 规则
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("sgphone", func(fl validator.FieldLevel) bool {
		return sgPhonePattern.MatchString(fl.Field().String())
	})
}
