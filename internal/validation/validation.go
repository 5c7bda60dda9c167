// Package validation checks decoded request payloads against the category and
// question schemas. It is pure: no I/O, no panics, just typed input in and
// field-grouped error messages out.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CategoryInput struct {
	Title string `json:"title" validate:"required,min=3,max=1024"`
}

type AnswerInput struct {
	Text    string `json:"text" validate:"required,min=1,max=1024"`
	Correct *bool  `json:"correct" validate:"required"`
}

type QuestionInput struct {
	Text    string        `json:"text" validate:"required,min=4,max=1024"`
	CatID   *uint         `json:"cat_id" validate:"required"`
	Answers []AnswerInput `json:"answers" validate:"required,min=2,max=6,dive"`
}

// FieldErrors groups validation messages by the JSON name of the offending
// field. Nested answer fields use an indexed path, e.g. "answers[1].text".
type FieldErrors map[string][]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Category validates a category create/update payload.
func Category(in CategoryInput) FieldErrors {
	return collect(validate.Struct(in))
}

// Question validates a question create/update payload, including the nested
// answers. Whether cat_id references an existing category is not checked here.
func Question(in QuestionInput) FieldErrors {
	return collect(validate.Struct(in))
}

// Slug validates a slug path parameter.
func Slug(slug string) FieldErrors {
	err := validate.Var(slug, "required,min=3,max=1024")
	if err == nil {
		return nil
	}
	fes := FieldErrors{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fes["slug"] = append(fes["slug"], message(fe))
		}
		return fes
	}
	fes["slug"] = []string{"invalid value"}
	return fes
}

func collect(err error) FieldErrors {
	if err == nil {
		return nil
	}
	fes := FieldErrors{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fes[""] = []string{"invalid value"}
		return fes
	}
	for _, fe := range verrs {
		key := fieldPath(fe)
		fes[key] = append(fes[key], message(fe))
	}
	return fes
}

// fieldPath strips the leading struct name from the error namespace, leaving
// "title", "answers", "answers[0].correct" and the like.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
