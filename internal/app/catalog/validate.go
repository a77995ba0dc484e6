package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// V returns the shared validator with the catalog's custom rules registered.
func V() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("resourcetype", resourceTypeValidator)
	})
	return validate
}

// resourceTypeValidator accepts only exact members of models.ResourceTypes.
func resourceTypeValidator(fl validator.FieldLevel) bool {
	return models.ResourceType(fl.Field().String()).Valid()
}

// Validate checks every record and reports all failures, each prefixed with
// the record's position and title.
func Validate(resources []models.Resource) error {
	var problems []string
	for i, r := range resources {
		if err := V().Struct(r); err != nil {
			problems = append(problems, fmt.Sprintf("resource %d (%q): %s", i, r.Title, describe(err)))
		}
	}
	if len(problems) > 0 {
		return errors.New("invalid catalog: " + strings.Join(problems, "; "))
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "resourcetype":
			parts = append(parts, fmt.Sprintf("type %q is not one of %s", fe.Value(), typeList()))
		case "lowercase":
			parts = append(parts, fmt.Sprintf("keyword %q must be lowercase", fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

func typeList() string {
	names := make([]string, len(models.ResourceTypes))
	for i, t := range models.ResourceTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}
