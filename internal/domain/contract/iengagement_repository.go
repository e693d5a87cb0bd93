package contract

import (
	"context"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/domain/result"
)

// IEngagementRepository persists like counters and comment lists per post slug.
// Failures are reported through the result kind instead of an error return.
type IEngagementRepository interface {
	LikeCount(ctx context.Context, slug string) result.Result[int64]
	IncrementLikes(ctx context.Context, slug string) result.Result[int64]
	DecrementLikes(ctx context.Context, slug string) result.Result[int64]
	// Comments returns the post's comments newest first.
	Comments(ctx context.Context, slug string) result.Result[[]entity.Comment]
	// PushComment prepends the comment and returns the new list length.
	PushComment(ctx context.Context, slug string, comment entity.Comment) result.Result[int64]
}
