package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("koanf"); name != "" {
			return name
		}

		return strings.ToLower(f.Name)
	})

	return v
}()

// Validate checks field constraints, then the rules that only apply to a
// production storefront. The service refuses to start on any failure.
func (c *Config) Validate() error {
	var problems []string

	var verrs validator.ValidationErrors

	if err := validate.Struct(c); err != nil {
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config validation: %w", err)
		}

		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	if c.App.Environment == "prod" {
		problems = append(problems, c.productionProblems()...)
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

func (c *Config) productionProblems() []string {
	var out []string

	if c.Visitor.Secret == devVisitorSecret {
		out = append(out, "visitor.secret must be changed from the development default")
	}

	if !c.Visitor.Secure {
		out = append(out, "visitor.secure must be true")
	}

	if !c.Recaptcha.Enabled {
		out = append(out, "recaptcha.enabled must be true")
	}

	return out
}

// describe renders one failure against its dotted koanf path, e.g.
// "services.backend.base_url must be a valid URL".
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "required_if":
		return path + " is required when " + strings.ToLower(fe.Param())
	case "min":
		return path + " must be at least " + fe.Param()
	case "max":
		return path + " must be at most " + fe.Param()
	case "oneof":
		return path + " must be one of: " + fe.Param()
	case "url":
		return path + " must be a valid URL"
	default:
		return path + " failed " + fe.Tag()
	}
}
