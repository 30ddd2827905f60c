package dto

import (
	"fmt"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validCategoryGroups = map[string]bool{
	string(domain.GroupEssential): true,
	string(domain.GroupLifestyle): true,
	string(domain.GroupIncome):    true,
	string(domain.GroupOther):     true,
}

// RegisterCustomValidators installs the domain-specific binding validations
// on gin's validator engine. Must run before the first request is bound.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type")
	}
	return v.RegisterValidation("categorygroup", func(fl validator.FieldLevel) bool {
		return validCategoryGroups[fl.Field().String()]
	})
}
