package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"clinicdesk/internal/api/dto"
	"clinicdesk/internal/domain"
)

// Validator plugs go-playground/validator into echo and knows the partial-update field types.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(partialValue,
		domain.Optional[string]{},
		domain.Optional[bool]{},
		domain.Optional[int64]{},
		domain.Optional[dto.AppointmentDate]{},
		dto.AppointmentDate{},
		domain.Optional[domain.TemplateType]{},
		domain.Optional[domain.AppointmentStatus]{},
		domain.Nullable[string]{},
	)

	return &Validator{v: v}
}

// partialValue hands the validator a pointer that is nil for absent or null fields,
// so omitnil skips them.
func partialValue(field reflect.Value) interface{} {
	if pv, ok := field.Interface().(interface{ ValidationValue() any }); ok {
		return pv.ValidationValue()
	}
	return nil
}

func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
