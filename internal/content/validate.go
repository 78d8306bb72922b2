package content

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// skillIcons are the icon names a skill group may reference.
var skillIcons = map[string]struct{}{
	"code":           {},
	"globe":          {},
	"database":       {},
	"shopping-bag":   {},
	"award":          {},
	"graduation-cap": {},
}

// SkillIcons lists the accepted skill group icon names.
func SkillIcons() []string {
	out := make([]string, 0, len(skillIcons))
	for name := range skillIcons {
		out = append(out, name)
	}
	return out
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml field names so errors match what the author wrote.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return isLink(fl.Field().String())
		})

		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			_, ok := skillIcons[fl.Field().String()]
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// isLink accepts in-page anchors, http(s) URLs with a host, and mailto links.
func isLink(s string) bool {
	if strings.HasPrefix(s, "#") {
		return !strings.ContainsAny(s, " \t\n")
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}

// Validate checks c for missing or malformed fields.
func Validate(c *Content) error {
	if c == nil {
		return &ValidationError{Message: "content is nil"}
	}
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	return &ValidationError{Field: fieldPath(fe.Namespace()), Message: describe(fe)}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("needs at least %s item(s)", fe.Param())
	case "link":
		return fmt.Sprintf("%q is not a link (want #anchor, http(s):// or mailto:)", fe.Value())
	case "icon":
		return fmt.Sprintf("unknown icon %q", fe.Value())
	case "numeric", "len":
		return fmt.Sprintf("%q is not a four digit year", fe.Value())
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}
