// Package validation turns gin binding failures into ordered field error lists.
package validation

import (
	"errors"
	"strings"

	"devconnector-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Messages maps a json field name, or "field.tag", to the message shown to clients.
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return "Invalid value for " + field
}

// Bind decodes the JSON body into req and validates it.
func Bind(c *gin.Context, req any, messages Messages) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return Translate(err, messages)
	}
	return nil
}

// Translate converts a binding error into an apperror validation error.
func Translate(err error, messages Messages) *apperror.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation([]apperror.FieldError{{Msg: "Invalid request body"}})
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := jsonName(fe)
		fields = append(fields, apperror.FieldError{
			Msg:   messages.lookup(name, fe.Tag()),
			Param: name,
		})
	}
	return apperror.Validation(fields)
}

// jsonName lowercases the struct field name, which matches the json tags used by request DTOs.
func jsonName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
