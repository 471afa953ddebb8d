package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// FieldError reports the first field that failed validation.
type FieldError struct {
	// Field is the dotted path using file keys, e.g. "host.width".
	Field string
	Tag   string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("skeleton_type", func(fl validator.FieldLevel) bool {
			_, err := skeleton.ParseType(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			_, err := skeleton.ParseDirection(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d >= 0
		})

		_ = v.RegisterValidation("semver_v1", func(fl validator.FieldLevel) bool {
			version := canonicalVersion(fl.Field().String())
			return semver.IsValid(version) && semver.Major(version) == "v1"
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks f against its schema.
func Validate(f *File) error {
	if f == nil {
		return errors.New("config.Validate", errors.KindConfig, fmt.Errorf("configuration is nil"))
	}
	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		return errors.New("config.Validate", errors.KindConfig, &FieldError{
			Field: fieldPath(ve),
			Tag:   ve.Tag(),
			Err:   ve,
		})
	}
	return errors.New("config.Validate", errors.KindConfig, err)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
