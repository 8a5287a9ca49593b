package dto

import (
	"errors"
	"html"
	"reflect"
	"strings"

	"wallet-faucet/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ln_address", validateLightningAddress)
	}
}

// validateLightningAddress accepts name@domain.tld, ignoring surrounding
// whitespace that SanitizeStruct strips afterwards.
func validateLightningAddress(fl validator.FieldLevel) bool {
	return domain.IsLightningAddress(strings.TrimSpace(fl.Field().String()))
}

// IsAddressRuleViolation reports whether err failed the ln_address rule.
func IsAddressRuleViolation(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "ln_address" {
			return true
		}
	}
	return false
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer. Fields tagged
// `sanitize:"trim"` hold protocol identifiers and are only trimmed.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		sanitize := escapeTrimmed
		if rv.Type().Field(i).Tag.Get("sanitize") == "trim" {
			sanitize = strings.TrimSpace
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func escapeTrimmed(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
