package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/Portalfi/Portalfi-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by api/models.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("amount", validateAmount)
	})
}

// fieldName reports fields by their wire name so validation details match
// what the client sent.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// validateAmount accepts non-negative decimal strings such as "12.50".
func validateAmount(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !value.IsNegative()
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "len":
		return "Value must be exactly " + err.Param() + " characters"
	case "oneof":
		return "Value must be one of: " + err.Param()
	case "e164":
		return "Invalid phone number, expected E.164 format"
	case "eth_addr":
		return "Invalid Ethereum address"
	case "amount":
		return "Invalid amount"
	case "url":
		return "Invalid URL"
	default:
		return "Invalid value"
	}
}

func validationErrors(err error) ([]models.ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]models.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out, true
}

func (s *Server) rejectBinding(ctx *gin.Context, err error) {
	if details, ok := validationErrors(err); ok {
		apiErr := newAPIError(http.StatusBadRequest, "Validation failed")
		apiErr.details = details
		s.writeError(ctx, apiErr)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		s.writeError(ctx, newAPIError(http.StatusBadRequest, "Malformed JSON body"))
	case errors.As(err, &typeErr):
		s.writeError(ctx, newAPIError(http.StatusBadRequest, "Invalid type for field "+typeErr.Field))
	default:
		s.writeError(ctx, newAPIError(http.StatusBadRequest, err.Error()))
	}
}

// bindJSON decodes and validates the body. On failure it writes the 400
// response and returns false.
func (s *Server) bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		s.rejectBinding(ctx, err)
		return false
	}
	return true
}

func (s *Server) bindQuery(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindQuery(obj); err != nil {
		s.rejectBinding(ctx, err)
		return false
	}
	return true
}
