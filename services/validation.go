package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError is returned before any request leaves the client.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Err.Error()
	}
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validate runs the binding tags of obj through gin's validator.
func validate(obj any) error {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Fields: fields, Err: err}
	}
	return &ValidationError{Err: err}
}

func invalid(field, rule string) error {
	return &ValidationError{
		Fields: []string{field + ":" + rule},
		Err:    fmt.Errorf("%s violates %s", field, rule),
	}
}
