package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 返回原始校验错误，具体文案由 response 层统一生成
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
