package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/domain/result"
)

// EngagementRepository keeps like counters and comment lists in the key-value store.
//
// Layout:
//
//	likes:<slug>     integer counter
//	comments:<slug>  list of JSON encoded comments, newest first
type EngagementRepository struct {
	store contract.IKVStore
}

// NewEngagementRepository creates and returns a new EngagementRepository instance.
func NewEngagementRepository(store contract.IKVStore) *EngagementRepository {
	return &EngagementRepository{store: store}
}

var _ contract.IEngagementRepository = (*EngagementRepository)(nil)

func likesKey(slug string) string    { return fmt.Sprintf("likes:%s", slug) }
func commentsKey(slug string) string { return fmt.Sprintf("comments:%s", slug) }

// LikeCount reads the counter. An absent or undecodable counter reads as 0.
func (r *EngagementRepository) LikeCount(ctx context.Context, slug string) result.Result[int64] {
	raw, found, err := r.store.Get(ctx, likesKey(slug))
	if err != nil {
		return result.FromError[int64](fmt.Errorf("failed to read likes for %s: %w", slug, err))
	}
	if !found {
		return result.Ok[int64](0)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return result.Ok[int64](0)
	}
	return result.Ok(n)
}

func (r *EngagementRepository) IncrementLikes(ctx context.Context, slug string) result.Result[int64] {
	n, err := r.store.Incr(ctx, likesKey(slug))
	if err != nil {
		return result.FromError[int64](fmt.Errorf("failed to increment likes for %s: %w", slug, err))
	}
	return result.Ok(n)
}

func (r *EngagementRepository) DecrementLikes(ctx context.Context, slug string) result.Result[int64] {
	n, err := r.store.Decr(ctx, likesKey(slug))
	if err != nil {
		return result.FromError[int64](fmt.Errorf("failed to decrement likes for %s: %w", slug, err))
	}
	return result.Ok(n)
}

// Comments reads the whole list. Elements that do not decode as a comment are skipped.
func (r *EngagementRepository) Comments(ctx context.Context, slug string) result.Result[[]entity.Comment] {
	items, err := r.store.LRange(ctx, commentsKey(slug), 0, -1)
	if err != nil {
		return result.FromError[[]entity.Comment](fmt.Errorf("failed to read comments for %s: %w", slug, err))
	}
	comments := make([]entity.Comment, 0, len(items))
	for _, item := range items {
		comment, ok := decodeComment(item)
		if !ok {
			continue
		}
		comments = append(comments, comment)
	}
	return result.Ok(comments)
}

func (r *EngagementRepository) PushComment(ctx context.Context, slug string, comment entity.Comment) result.Result[int64] {
	data, err := json.Marshal(comment)
	if err != nil {
		return result.Fail[int64](result.KindInternal, fmt.Errorf("failed to encode comment: %w", err))
	}
	n, err := r.store.LPush(ctx, commentsKey(slug), string(data))
	if err != nil {
		return result.FromError[int64](fmt.Errorf("failed to push comment for %s: %w", slug, err))
	}
	return result.Ok(n)
}

// decodeComment accepts records with missing or extra fields. A record must
// be a non-empty JSON object.
func decodeComment(raw string) (entity.Comment, bool) {
	var c entity.Comment
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return entity.Comment{}, false
	}
	return c, c != (entity.Comment{})
}
