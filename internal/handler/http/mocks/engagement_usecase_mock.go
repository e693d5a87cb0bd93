package mocks

import (
	"context"
	"sync"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// MockEngagementUsecase is a mock implementation of the engagement actions.
// A failing action returns the same default the real one soft-fails to.
type MockEngagementUsecase struct {
	// Control mock behavior
	ShouldFailGetLikes    bool
	ShouldFailAddLike     bool
	ShouldFailRemoveLike  bool
	ShouldFailGetComments bool
	ShouldFailAddComment  bool

	// Return values
	Likes    int64
	Comments []entity.Comment

	mu            sync.Mutex
	snapshotCalls int
	LastAuthor    string
	LastText      string
}

var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase() *MockEngagementUsecase {
	return &MockEngagementUsecase{
		Likes: 3,
		Comments: []entity.Comment{
			{ID: "1700000000000-abcdefghi", Text: "Nice post", Author: "Ana", CreatedAt: 1700000000000},
		},
	}
}

func (m *MockEngagementUsecase) GetLikes(ctx context.Context, slug string) int64 {
	if m.ShouldFailGetLikes {
		return 0
	}
	return m.Likes
}

func (m *MockEngagementUsecase) AddLike(ctx context.Context, slug string) int64 {
	if m.ShouldFailAddLike {
		return 0
	}
	m.Likes++
	return m.Likes
}

func (m *MockEngagementUsecase) RemoveLike(ctx context.Context, slug string) int64 {
	if m.ShouldFailRemoveLike {
		return 0
	}
	if m.Likes > 0 {
		m.Likes--
	}
	return m.Likes
}

func (m *MockEngagementUsecase) GetComments(ctx context.Context, slug string) []entity.Comment {
	if m.ShouldFailGetComments {
		return []entity.Comment{}
	}
	return m.Comments
}

func (m *MockEngagementUsecase) AddComment(ctx context.Context, slug, text, author string) *entity.Comment {
	m.LastText, m.LastAuthor = text, author
	if m.ShouldFailAddComment {
		return nil
	}
	c := entity.Comment{ID: "1700000000001-zyxwvutsr", Text: text, Author: author, CreatedAt: 1700000000001}
	m.Comments = append([]entity.Comment{c}, m.Comments...)
	return &c
}

func (m *MockEngagementUsecase) GetSnapshot(ctx context.Context, slug string) entity.EngagementSnapshot {
	m.mu.Lock()
	m.snapshotCalls++
	m.mu.Unlock()
	return entity.EngagementSnapshot{Likes: m.GetLikes(ctx, slug), Comments: m.GetComments(ctx, slug)}
}

// SnapshotCalls reports how often GetSnapshot ran.
func (m *MockEngagementUsecase) SnapshotCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotCalls
}
