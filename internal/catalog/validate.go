package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError collects every problem found in a method list.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCatalog }

// Validate checks methods for structural problems and duplicate names.
// Labels outside the known entity set are not errors; they are returned as
// warnings because the page falls back to the default badge color for them.
func Validate(methods []Method) (warnings []string, err error) {
	var problems []string
	seen := make(map[string]int, len(methods))

	for i, m := range methods {
		if verr := validate.Struct(m); verr != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(verr, &fieldErrs) {
				for _, fe := range fieldErrs {
					problems = append(problems, fmt.Sprintf("methods[%d] (%s): %s failed %q", i, m.Name, fe.Namespace(), fe.Tag()))
				}
			} else {
				problems = append(problems, fmt.Sprintf("methods[%d]: %v", i, verr))
			}
		}

		if m.Name != "" {
			if first, dup := seen[m.Name]; dup {
				problems = append(problems, fmt.Sprintf("methods[%d]: %v %q (first at methods[%d])", i, ErrDuplicateMethod, m.Name, first))
			} else {
				seen[m.Name] = i
			}
		}

		if m.Entity != "" && !m.Entity.Known() {
			warnings = append(warnings, fmt.Sprintf("methods[%d] (%s): %v %q, default color will be used", i, m.Name, ErrUnknownEntity, m.Entity))
		}
	}

	if len(problems) > 0 {
		return warnings, &ValidationError{Problems: problems}
	}
	return warnings, nil
}
