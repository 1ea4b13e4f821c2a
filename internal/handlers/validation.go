package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	"github.com/SscSPs/bill_tracker/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	nonFieldErrors = "non_field_errors"
	msgNotNull     = "This field may not be null."
)

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validator report fields by their json name so
// errors line up with the payload keys.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the request body onto req and runs its binding tags.
// req may already hold values; keys absent from the body leave them as is.
// An empty body is treated as {}.
func bindJSON[R any](c *gin.Context, req *R) error {
	useJSONFieldNames()

	body, err := c.GetRawData()
	if err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "Could not read request body.", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, req); err != nil {
		return decodeError[R](body, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return apperrors.NewFieldError(nonFieldErrors,
			fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKind(body)))
	}

	// encoding/json leaves a non-pointer field untouched on null, so nulls
	// are rejected from the raw keys before the struct is validated.
	fields := apperrors.FieldErrors{}
	nonNullable := nonNullableFields(reflect.TypeOf((*R)(nil)).Elem())
	for key, value := range raw {
		if nonNullable[key] && isJSONNull(value) {
			fields.Add(key, msgNotNull)
		}
	}

	if err := binding.Validator.ValidateStruct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperrors.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; seen {
				continue
			}
			_, present := raw[fe.Field()]
			fields.Add(fe.Field(), tagMessage(fe, present))
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

// nonNullableFields returns the json names of t's fields that may not be
// null: plain values, and pointers marked required.
func nonNullableFields(t reflect.Type) map[string]bool {
	out := map[string]bool{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		required := false
		for _, rule := range strings.Split(f.Tag.Get("binding"), ",") {
			if rule == "required" {
				required = true
			}
		}
		if f.Type.Kind() != reflect.Pointer || required {
			out[name] = true
		}
	}
	return out
}

func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// decodeError turns a json decoding failure into field-scoped messages by
// decoding each key on its own.
func decodeError[R any](body []byte, cause error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(cause, &syntaxErr) {
		return apperrors.NewAppError(http.StatusBadRequest, "JSON parse error - "+syntaxErr.Error(), cause)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperrors.NewFieldError(nonFieldErrors,
			fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKind(body)))
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := apperrors.FieldErrors{}
	nonNullable := nonNullableFields(reflect.TypeOf((*R)(nil)).Elem())
	for _, key := range keys {
		if nonNullable[key] && isJSONNull(raw[key]) {
			fields.Add(key, msgNotNull)
			continue
		}
		single, err := json.Marshal(map[string]json.RawMessage{key: raw[key]})
		if err != nil {
			continue
		}
		var one R
		if err := json.Unmarshal(single, &one); err != nil {
			fields.Add(key, decodeMessage(err))
		}
	}
	if len(fields) == 0 {
		return apperrors.NewAppError(http.StatusBadRequest, "JSON parse error - "+cause.Error(), cause)
	}
	return apperrors.NewValidationError(fields)
}

func decodeMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidMoney):
		return "A valid number is required."
	case errors.Is(err, domain.ErrInvalidDate):
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case errors.Is(err, dto.ErrInvalidInt):
		return "A valid integer is required."
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Type != nil {
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return "A valid integer is required."
		case reflect.Bool:
			return "Must be a valid boolean."
		case reflect.String:
			return "Not a valid string."
		}
	}
	return "Invalid value."
}

func jsonKind(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "NoneType"
	default:
		return "int"
	}
}

// tagMessage maps a validator tag failure to a client message. present
// tells whether the key was in the payload, separating a blank value from
// a missing one.
func tagMessage(fe validator.FieldError, present bool) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		if isString && present {
			return "This field may not be blank."
		}
		return "This field is required."
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
