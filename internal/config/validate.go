package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"oneof":    "The field '%s' must be one of: %s.",
}

// ValidationError maps yaml field names to friendly messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = e.Fields[k]
	}
	return "invalid configuration: " + strings.Join(msgs, " ")
}

// Validate checks every axis against its closed set of values.
func (c *ProjectConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	structType := reflect.TypeOf(*c)
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		name := e.StructField()
		if f, ok := structType.FieldByName(e.StructField()); ok {
			if tag := strings.Split(f.Tag.Get("yaml"), ",")[0]; tag != "" {
				name = tag
			}
		}
		fields[name] = parseMessage(name, e)
	}
	return &ValidationError{Fields: fields}
}

func parseMessage(field string, e validator.FieldError) string {
	msg, ok := errorMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, field, strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return fmt.Sprintf(msg, field)
}
