package variants

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON names so errors match the catalog's field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateVariant checks the fields clustering depends on. The returned errors are ordered
// by struct field and each unwraps to ErrInvalidRecord.
func ValidateVariant(index int, v FragranceVariant) []*RecordError {
	err := recordValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []*RecordError{{Index: index, ID: v.ID, Field: "record", Err: err}}
	}

	out := make([]*RecordError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &RecordError{
			Index: index,
			ID:    v.ID,
			Field: fe.Field(),
			Err:   fmt.Errorf("failed %q constraint", fe.Tag()),
		})
	}
	return out
}

// partitionValid splits a batch into usable records and rejections, keeping input order.
func partitionValid(batch []FragranceVariant) ([]FragranceVariant, []*RecordError) {
	valid := make([]FragranceVariant, 0, len(batch))
	var skipped []*RecordError
	for i, v := range batch {
		if errs := ValidateVariant(i, v); len(errs) > 0 {
			skipped = append(skipped, errs...)
			continue
		}
		valid = append(valid, v)
	}
	return valid, skipped
}
