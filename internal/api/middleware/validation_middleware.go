package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	ValidatedModelKey = "validated_model"
	ValidatedQueryKey = "validated_query"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validator *validator.Validate
	log       *logger.Logger
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware(log *logger.Logger) *ValidationMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	v := validator.New()

	v.RegisterValidation("not_empty", validateNotEmpty)
	v.RegisterValidation("valid_uuid", validateUUID)
	v.RegisterValidation("clock", validateClock)
	v.RegisterValidation("day", validateDay)

	return &ValidationMiddleware{
		validator: v,
		log:       log,
	}
}

// ValidateRequest decodes the JSON body into a fresh copy of model and validates it.
// An empty body decodes to the zero value.
func (m *ValidationMiddleware) ValidateRequest(model interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		modelType := reflect.TypeOf(model)
		if modelType.Kind() == reflect.Ptr {
			modelType = modelType.Elem()
		}
		modelValue := reflect.New(modelType).Interface()

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
		}

		m.log.Debug("Request details",
			zap.String("path", c.Request.URL.Path),
			zap.String("content_type", c.GetHeader("Content-Type")),
			zap.Int("content_length", len(bodyBytes)))

		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if len(bytes.TrimSpace(bodyBytes)) > 0 {
			if err := json.Unmarshal(bodyBytes, modelValue); err != nil {
				m.log.Warn("JSON unmarshal failed",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Invalid JSON format: %v", err.Error()),
				})
				return
			}
		}

		if !m.validate(c, modelValue) {
			return
		}

		c.Set(ValidatedModelKey, modelValue)
		c.Next()
	}
}

// ValidateQuery validates query parameters against the provided struct
func (m *ValidationMiddleware) ValidateQuery(model interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		modelType := reflect.TypeOf(model)
		if modelType.Kind() == reflect.Ptr {
			modelType = modelType.Elem()
		}
		modelValue := reflect.New(modelType).Interface()

		if err := c.ShouldBindQuery(modelValue); err != nil {
			m.log.Warn("Failed to bind query parameters",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid query parameters",
			})
			return
		}

		if !m.validate(c, modelValue) {
			return
		}

		c.Set(ValidatedQueryKey, modelValue)
		c.Next()
	}
}

func (m *ValidationMiddleware) validate(c *gin.Context, model interface{}) bool {
	err := m.validator.Struct(model)
	if err == nil {
		return true
	}
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = formatValidationError(fe)
		}
	}

	m.log.Warn("Validation failed",
		zap.Any("errors", details),
		zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"details": details,
	})
	return false
}

// Custom validators
func validateNotEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return len(strings.TrimSpace(value)) > 0
}

func validateUUID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return len(value) == 36 && strings.Count(value, "-") == 4
}

// validateClock accepts HH:MM with a 24-hour clock.
func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse(timeutil.TimeLayout, fl.Field().String())
	return err == nil
}

func validateDay(fl validator.FieldLevel) bool {
	_, err := timeutil.ParseDate(fl.Field().String(), time.UTC)
	return err == nil
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too small"
	case "max":
		return "value is too large"
	case "oneof":
		return "must be one of: " + err.Param()
	case "not_empty":
		return "this field cannot be empty"
	case "valid_uuid":
		return "invalid UUID format"
	case "clock":
		return "time must be HH:MM"
	case "day":
		return "date must be YYYY-MM-DD"
	default:
		return "invalid value"
	}
}
