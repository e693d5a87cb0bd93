package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/domain/result"
	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// commentIDSuffixLength is the number of base36 characters after the timestamp in a comment id.
const commentIDSuffixLength = 9

const (
	actionGetLikes    = "get_likes"
	actionAddLike     = "add_like"
	actionRemoveLike  = "remove_like"
	actionGetComments = "get_comments"
	actionAddComment  = "add_comment"
)

// EngagementUsecase implements likes and comments for blog posts. It keeps no
// state between calls; concurrent safety comes from the store's atomic
// INCR, DECR and LPUSH.
type EngagementUsecase struct {
	repo        contract.IEngagementRepository
	invalidator contract.IPageInvalidator
	randomGen   contract.IRandomGenerator
	validator   usecasecontract.IValidator
	clock       clockwork.Clock
	logger      usecasecontract.IAppLogger
}

// NewEngagementUsecase creates and returns a new EngagementUsecase instance.
func NewEngagementUsecase(
	repo contract.IEngagementRepository,
	invalidator contract.IPageInvalidator,
	randomGen contract.IRandomGenerator,
	validator usecasecontract.IValidator,
	clock clockwork.Clock,
	logger usecasecontract.IAppLogger,
) *EngagementUsecase {
	return &EngagementUsecase{
		repo:        repo,
		invalidator: invalidator,
		randomGen:   randomGen,
		validator:   validator,
		clock:       clock,
		logger:      logger,
	}
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUsecase)(nil)

// GetLikes returns the like count of a post, 0 if it has none or the store fails.
func (u *EngagementUsecase) GetLikes(ctx context.Context, slug string) int64 {
	if r, ok := u.checkSlug(slug); !ok {
		return u.likesFallback(actionGetLikes, slug, r)
	}
	return u.likesFallback(actionGetLikes, slug, u.repo.LikeCount(ctx, slug))
}

// AddLike increments the like count and returns the new value, 0 on failure.
func (u *EngagementUsecase) AddLike(ctx context.Context, slug string) int64 {
	if r, ok := u.checkSlug(slug); !ok {
		return u.likesFallback(actionAddLike, slug, r)
	}
	r := u.repo.IncrementLikes(ctx, slug)
	if !r.OK() {
		return u.likesFallback(actionAddLike, slug, r)
	}
	u.mutated(actionAddLike, slug)
	return r.Value
}

// RemoveLike decrements the like count if it is positive. A count that is
// already zero (or absent) is returned unchanged. The read and the decrement
// are separate store calls, so two concurrent unlikes may both see 1; the
// counter is not critical enough to pay for a script.
func (u *EngagementUsecase) RemoveLike(ctx context.Context, slug string) int64 {
	if r, ok := u.checkSlug(slug); !ok {
		return u.likesFallback(actionRemoveLike, slug, r)
	}
	current := u.repo.LikeCount(ctx, slug)
	if !current.OK() {
		return u.likesFallback(actionRemoveLike, slug, current)
	}
	if current.Value <= 0 {
		return current.Value
	}
	r := u.repo.DecrementLikes(ctx, slug)
	if !r.OK() {
		return u.likesFallback(actionRemoveLike, slug, r)
	}
	u.mutated(actionRemoveLike, slug)
	return r.Value
}

// GetComments returns the post's comments newest first, empty on failure.
func (u *EngagementUsecase) GetComments(ctx context.Context, slug string) []entity.Comment {
	if r, ok := u.checkSlug(slug); !ok {
		return u.commentsFallback(actionGetComments, slug, result.Fail[[]entity.Comment](r.Kind, r.Err))
	}
	return u.commentsFallback(actionGetComments, slug, u.repo.Comments(ctx, slug))
}

// AddComment validates and stores a new comment at the head of the post's list.
// It returns nil when the input is invalid or the store fails; callers cannot
// tell the two apart.
func (u *EngagementUsecase) AddComment(ctx context.Context, slug, text, author string) *entity.Comment {
	if r, ok := u.checkSlug(slug); !ok {
		return u.commentFallback(slug, r.Kind, r.Err)
	}
	text, author, err := entity.NormalizeCommentInput(text, author)
	if err != nil {
		return u.commentFallback(slug, result.KindValidation, err)
	}

	createdAt := u.clock.Now().UnixMilli()
	suffix, err := u.randomGen.GenerateSuffix(commentIDSuffixLength)
	if err != nil {
		return u.commentFallback(slug, result.KindInternal, err)
	}
	comment := entity.Comment{
		ID:        fmt.Sprintf("%d-%s", createdAt, suffix),
		Text:      text,
		Author:    author,
		CreatedAt: createdAt,
	}

	if r := u.repo.PushComment(ctx, slug, comment); !r.OK() {
		return u.commentFallback(slug, r.Kind, r.Err)
	}
	u.mutated(actionAddComment, slug)
	return &comment
}

// GetSnapshot returns the like count and comments rendered on a post page.
func (u *EngagementUsecase) GetSnapshot(ctx context.Context, slug string) entity.EngagementSnapshot {
	return entity.EngagementSnapshot{
		Likes:    u.GetLikes(ctx, slug),
		Comments: u.GetComments(ctx, slug),
	}
}

func (u *EngagementUsecase) checkSlug(slug string) (result.Result[int64], bool) {
	if err := u.validator.ValidateSlug(slug); err != nil {
		return result.Fail[int64](result.KindValidation, err), false
	}
	return result.Result[int64]{}, true
}

// mutated records a successful write and tells the presentation layer the post page is stale.
func (u *EngagementUsecase) mutated(action, slug string) {
	metrics.EngagementMutations.WithLabelValues(action).Inc()
	u.invalidator.InvalidatePath(entity.PostPath(slug))
}
