package utils

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notecontent", ValidateNoteContentRule)
	}
}

func ValidateNoteContentRule(fl validator.FieldLevel) bool {
	return ValidateNoteContent(fl.Field().String())
}

// ValidateNoteContent rejects content that is empty or whitespace only.
func ValidateNoteContent(content string) bool {
	return strings.TrimSpace(content) != ""
}
