//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("sees marks attached with Mark", func(t *testing.T) {
		err := errs.Mark(errs.New("underlying failure"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// Marks live outside the Unwrap chain, so the standard library
		// cannot see them. Classification must go through errs.Is.
		assert.False(t, errors.Is(err, sentinel))
	})

	t.Run("sees wrap causes", func(t *testing.T) {
		err := errs.Wrap(sentinel, "while doing work")

		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("does not match unrelated errors", func(t *testing.T) {
		err := errs.Mark(errs.New("underlying failure"), sentinel)

		assert.False(t, errs.Is(err, errs.New("other")))
	})
}

func TestMark(t *testing.T) {
	t.Run("nil err yields the mark itself", func(t *testing.T) {
		sentinel := errs.New("sentinel")

		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})
}
