package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated constraint, reported to the client as
// {path, message}.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report paths using JSON field names so error details line up with the
	// request body the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct runs tag-based validation and flattens the result into
// client-facing field errors. A nil return means the value is valid.
func ValidateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only happens when the input is not a struct, which is a
		// programming defect rather than a client error.
		return []FieldError{{Path: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from the namespace, leaving the
// dotted JSON path ("userInfo.ageGroup").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		ns = ns[idx+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "timezone":
		return "must be a valid IANA timezone"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// Patterns that have no place in a medicine search query. Substring checks
// are cheaper than regex here and the list is short.
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "onload=", "onerror=",
	"union select", "drop table", "delete from", "insert into",
	"../", "..\\", "%2e%2e", "file://",
	"$(", "${", "`",
}

// ValidateSearchQuery checks free-text search input from path parameters.
func ValidateSearchQuery(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	if len(input) > 100 {
		return fmt.Errorf("search query too long: %d characters (max 100)", len(input))
	}

	lowered := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("search query contains invalid characters")
		}
	}

	return nil
}
