package errs

import (
	"sort"
	"strings"
)

// FieldErrors carries validation failures keyed by input field so callers can
// render them next to the offending form fields.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fe[k])
	}
	return b.String()
}

func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// AsFieldErrors unwraps err to FieldErrors if it is one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if err == nil {
		return nil, false
	}
	if ok := As(err, &fe); ok {
		return fe, true
	}
	return nil, false
}
