package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
)

// IEngagementUseCase is the action boundary the presentation layer calls.
// None of the methods fail: store and validation errors become defaults.
type IEngagementUseCase interface {
	GetLikes(ctx context.Context, slug string) int64
	AddLike(ctx context.Context, slug string) int64
	RemoveLike(ctx context.Context, slug string) int64
	GetComments(ctx context.Context, slug string) []entity.Comment
	// AddComment returns nil when nothing was created.
	AddComment(ctx context.Context, slug, text, author string) *entity.Comment
	GetSnapshot(ctx context.Context, slug string) entity.EngagementSnapshot
}
