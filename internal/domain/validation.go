package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("icon", validateIcon)
	_ = validatorInstance.RegisterValidation("href", validateHref)
}

func validateIcon(fl validator.FieldLevel) bool {
	return IconKind(fl.Field().String()).Valid()
}

// validateHref accepts absolute http(s) URLs, mailto: addresses and
// root-relative paths to local assets.
func validateHref(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.HasPrefix(raw, "/") {
		return !strings.HasPrefix(raw, "//")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}

// Validate checks every record of the profile. The returned error wraps
// ErrInvalidContent and lists each failing field.
func (p *Profile) Validate() error {
	err := validatorInstance.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(fields, ", "))
}
