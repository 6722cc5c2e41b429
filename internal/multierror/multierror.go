// Package multierror collects independent errors, such as problems with
// several configuration fields, so they can be reported at once.
package multierror

import (
	"strings"
)

// Error is a set of errors keyed by the thing that failed. Keys keep the
// order in which they were first added.
type Error[K comparable] struct {
	keys   []K
	errors map[K]error
	format func(K) string
}

// New creates an empty Error. The key is rendered with format in the error
// message.
func New[K comparable](format func(K) string) *Error[K] {
	return &Error[K]{
		errors: make(map[K]error),
		format: format,
	}
}

// Add records the error for the key, replacing the previous one. Nil errors
// are ignored.
func (m *Error[K]) Add(key K, err error) {
	if err == nil {
		return
	}

	if _, ok := m.errors[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.errors[key] = err
}

func (m *Error[K]) Error() string {
	var b strings.Builder

	for i, key := range m.keys {
		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString(m.format(key))
		b.WriteString(": ")
		b.WriteString(m.errors[key].Error())
	}

	return b.String()
}

// Unwrap returns the errors in insertion order.
func (m *Error[K]) Unwrap() []error {
	errs := make([]error, 0, len(m.keys))
	for _, key := range m.keys {
		errs = append(errs, m.errors[key])
	}

	return errs
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[K]) Combined() error {
	if len(m.keys) == 0 {
		return nil
	}

	return m
}

// String is a key format for string keys.
func String(s string) string {
	return s
}
