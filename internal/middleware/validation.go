package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/pkg/logger"
	"github.com/swcatalog/starwars/internal/pkg/validation"
)

var configureOnce sync.Once

// ConfigureValidator makes gin's validator report JSON field names
func ConfigureValidator() {
	configureOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
			if err := validation.Register(v); err != nil {
				logger.Error().Err(err).Msg("Failed to register validation rules")
			}
		}
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// BindJSON decodes and validates the request body into obj. Failures are
// returned as application errors carrying a readable message.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, formatValidationError(fe))
		}
		return apperrors.NewValidationError(strings.Join(messages, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewBadRequestError(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}

	return apperrors.NewBadRequestError("invalid request body: " + err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case validation.TagNotBlank:
		return e.Field() + " must not be blank"
	case "datetime":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
