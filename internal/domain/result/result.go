// Package result carries the outcome of a store-facing call: a value, or the kind
// of failure that prevented it. The action layer maps each failure kind to its
// default at the boundary.
package result

import (
	"errors"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
)

// Kind classifies why a store-facing call did not produce a value.
type Kind int

const (
	KindOK Kind = iota
	KindConfig
	KindTransient
	KindMalformed
	KindValidation
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindConfig:
		return "config"
	case KindTransient:
		return "transient"
	case KindMalformed:
		return "malformed"
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Result is either a value (Kind == KindOK) or a failure kind with its cause.
type Result[T any] struct {
	Value T
	Kind  Kind
	Err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Kind: KindOK}
}

// Fail builds a failed result of the given kind.
func Fail[T any](kind Kind, err error) Result[T] {
	return Result[T]{Kind: kind, Err: err}
}

// FromError builds a failed result, classifying err.
func FromError[T any](err error) Result[T] {
	return Fail[T](Classify(err), err)
}

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool {
	return r.Kind == KindOK
}

// Or returns the value, or def if the call failed.
func (r Result[T]) Or(def T) T {
	if r.OK() {
		return r.Value
	}
	return def
}

// Classify maps an error to its failure kind. Unrecognised errors are transient.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, entity.ErrStoreNotConfigured):
		return KindConfig
	case errors.Is(err, entity.ErrMalformedRecord):
		return KindMalformed
	case errors.Is(err, entity.ErrInvalidComment), errors.Is(err, entity.ErrInvalidSlug):
		return KindValidation
	default:
		return KindTransient
	}
}
