package result_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/domain/result"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want result.Kind
	}{
		{nil, result.KindOK},
		{entity.ErrStoreNotConfigured, result.KindConfig},
		{fmt.Errorf("open store: %w", entity.ErrStoreNotConfigured), result.KindConfig},
		{fmt.Errorf("%w: INCR: connection refused", entity.ErrStoreUnavailable), result.KindTransient},
		{fmt.Errorf("decode: %w", entity.ErrMalformedRecord), result.KindMalformed},
		{entity.ErrInvalidComment, result.KindValidation},
		{entity.ErrInvalidSlug, result.KindValidation},
		{context.DeadlineExceeded, result.KindTransient},
		{errors.New("boom"), result.KindTransient},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, result.Classify(tt.err), "error: %v", tt.err)
	}
}

func TestResultOr(t *testing.T) {
	assert.Equal(t, int64(7), result.Ok[int64](7).Or(0))
	assert.Equal(t, int64(0), result.FromError[int64](entity.ErrStoreUnavailable).Or(0))

	r := result.Fail[[]entity.Comment](result.KindConfig, entity.ErrStoreNotConfigured)
	assert.False(t, r.OK())
	assert.Empty(t, r.Or([]entity.Comment{}))
	assert.ErrorIs(t, r.Err, entity.ErrStoreNotConfigured)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transient", result.KindTransient.String())
	assert.Equal(t, "config", result.KindConfig.String())
	assert.Equal(t, "unknown", result.Kind(99).String())
}
