package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ContentRegistry_Go/internal/domain"
	"github.com/osse101/ContentRegistry_Go/internal/logger"
	"github.com/osse101/ContentRegistry_Go/internal/metrics"
)

// parseFunc turns one element of a category file into its record.
type parseFunc[T domain.Record] func(raw json.RawMessage) (T, error)

// definition is implemented by the *Def types; T is the record each one builds.
type definition[T domain.Record] interface {
	record() T
}

type loader struct {
	validate *validator.Validate
	strict   bool
}

func newLoader(strict bool) *loader {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &loader{validate: v, strict: strict}
}

// jsonFieldName makes validation errors name fields the way content files do.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// parser returns the element parser for definition type D.
func parser[D definition[T], T domain.Record](l *loader) parseFunc[T] {
	return func(raw json.RawMessage) (T, error) {
		var def D
		if err := l.decode(raw, &def); err != nil {
			var zero T
			return zero, err
		}
		return def.record(), nil
	}
}

// decode fills def from one element and checks that every required key was present.
func (l *loader) decode(raw json.RawMessage, def any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if l.strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(def); err != nil {
		return fmt.Errorf(ErrFmtInvalidField, ErrInvalidField, err)
	}

	if err := l.validate.Struct(def); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf(ErrFmtMissingFields, ErrMissingField, strings.Join(fieldPaths(fieldErrs), ", "))
		}
		return fmt.Errorf(ErrFmtInvalidField, ErrInvalidField, err)
	}

	return nil
}

// fieldPaths renders validation failures as JSON paths, e.g. "stackSize" or
// "requirements[1].amount".
func fieldPaths(errs validator.ValidationErrors) []string {
	paths := make([]string, 0, len(errs))
	for _, fe := range errs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		paths = append(paths, strings.TrimPrefix(ns, "ItemDef."))
	}
	return paths
}

// loadCategory reads one category file and parses every element with parse.
// File level problems (unreadable, not a JSON array) are returned as errors.
// A bad element fails the whole file in strict mode; otherwise it is logged,
// counted and skipped. Later elements overwrite earlier ones with the same id.
func loadCategory[T domain.Record](ctx context.Context, category domain.Category, path string, parse parseFunc[T], strict bool) (map[string]T, int, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgReadFileFailed, ErrFileUnavailable, path, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, 0, fmt.Errorf(ErrMsgParseFileFailed, ErrMalformedJSON, path, err)
	}
	if elements == nil {
		return nil, 0, fmt.Errorf(ErrMsgParseFileFailed, ErrMalformedJSON, path, errNullDocument)
	}

	records := make(map[string]T, len(elements))
	skipped := 0

	for i, raw := range elements {
		rec, err := parse(raw)
		if err != nil {
			err = fmt.Errorf(ErrMsgElementFailed, path, i, err)
			if strict {
				return nil, skipped, err
			}

			skipped++
			metrics.ElementsSkipped.WithLabelValues(category.String()).Inc()
			log.Warn(LogMsgElementSkipped, "category", category.String(), "index", i, "error", err)
			continue
		}

		id := rec.Base().ID
		if _, exists := records[id]; exists {
			log.Debug(LogMsgDuplicateID, "category", category.String(), "id", id, "index", i)
		}
		records[id] = rec
	}

	return records, skipped, nil
}
