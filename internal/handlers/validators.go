package handlers

import (
	"context"
	"strings"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	portssvc "github.com/SscSPs/moneyparse/internal/core/ports/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding tags used by the DTOs:
// known_currency (a code in the catalog) and pattern_kind (a recognizer name).
func registerValidators(currencies portssvc.CurrencyReaderSvc) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("known_currency", func(fl validator.FieldLevel) bool {
		code := strings.TrimSpace(fl.Field().String())
		if len(code) != 3 {
			return false
		}
		_, err := currencies.GetCurrencyByCode(context.Background(), code)
		return err == nil
	}); err != nil {
		return err
	}

	return v.RegisterValidation("pattern_kind", func(fl validator.FieldLevel) bool {
		return domain.PatternKind(fl.Field().String()).IsValid()
	})
}
