package input

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/agbru/vieta/internal/errors"
	"github.com/agbru/vieta/internal/radix"
	"github.com/agbru/vieta/internal/vieta"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	baseRule = fmt.Sprintf("min=%d,max=%d", radix.MinBase, radix.MaxBase)
)

// validatorInstance reports field names from the `field` tag so that
// validation errors use the names found in the document.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("field"); name != "" {
				return name
			}
			return fld.Name
		})
	})
	return validate
}

// requireFields runs the `required` rules of s and converts the first
// failure into a MissingFieldError named prefix.field.
func requireFields(prefix string, s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.MissingFieldError{Field: prefix + "." + verrs[0].Field()}
	}
	return apperrors.NewMalformedInputError(err, "validation of %q failed", prefix)
}

// toProblem checks required fields and converts the literal texts into a
// vieta.Problem. Root values are left encoded; they are decoded during
// evaluation so that digit errors report the root they belong to.
func toProblem(doc *rawDocument) (*vieta.Problem, error) {
	if doc.Keys == nil {
		return nil, apperrors.MissingFieldError{Field: KeysField}
	}
	if err := requireFields(KeysField, doc.Keys); err != nil {
		return nil, err
	}

	n, err := parseInt(doc.Keys.N.text)
	if err != nil {
		return nil, apperrors.NewMalformedInputError(err, "field %q must be an integer", KeysField+".n")
	}
	k, ok := new(big.Int).SetString(strings.TrimSpace(doc.Keys.K.text), 10)
	if !ok {
		return nil, apperrors.NewMalformedInputError(nil, "field %q must be a base-10 integer, got %q", KeysField+".k", doc.Keys.K.text)
	}

	p := &vieta.Problem{N: n, K: k, Roots: make([]vieta.EncodedRoot, 0, len(doc.Roots))}
	for _, r := range doc.Roots {
		if err := requireFields(r.ID, r); err != nil {
			return nil, err
		}
		base, err := parseInt(r.Base.text)
		if err != nil {
			return nil, apperrors.NewMalformedInputError(err, "field %q must be an integer", r.ID+".base")
		}
		if err := validatorInstance().Var(base, baseRule); err != nil {
			return nil, apperrors.NewMalformedInputError(radix.ErrBaseOutOfRange, "field %q is %d", r.ID+".base", base)
		}
		p.Roots = append(p.Roots, vieta.EncodedRoot{ID: r.ID, Base: base, Value: r.Value.text})
	}
	return p, nil
}

func parseInt(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}
