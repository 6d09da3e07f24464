package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const invalidRequestMessage = "Requête invalide."

var registerOnce sync.Once

// RegisterValidators adds the custom rules used by the form models and makes
// validation errors report fields by their form name.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
}

// FieldErrors maps a form field name to the message shown under it
type FieldErrors map[string]string

// Valid reports whether no field has an error
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Missing reports whether a required field was left empty
func (fe FieldErrors) Missing() bool {
	for _, msg := range fe {
		if msg == requiredMessage {
			return true
		}
	}
	return false
}

const requiredMessage = "Ce champ est obligatoire."

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return requiredMessage
	case "email":
		return "Adresse email invalide."
	case "min":
		return fmt.Sprintf("Au moins %s caractères.", fe.Param())
	case "max":
		return fmt.Sprintf("%s caractères maximum.", fe.Param())
	case "oneof":
		return "Veuillez choisir une valeur proposée."
	case "datetime":
		return "Date invalide."
	default:
		return "Valeur invalide."
	}
}

// bindForm binds the posted form into obj. On failure it returns the per-field
// messages to display, keyed by form field name.
func bindForm(c *gin.Context, obj interface{}) FieldErrors {
	err := c.ShouldBind(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": invalidRequestMessage}
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}
	return errs
}
