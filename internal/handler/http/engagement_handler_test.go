package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
	handler "github.com/mikiasgoitom/folio/internal/handler/http"
	dto "github.com/mikiasgoitom/folio/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/folio/internal/handler/http/mocks"
	"github.com/mikiasgoitom/folio/internal/infrastructure/store"
	"github.com/mikiasgoitom/folio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/folio/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type testConfig struct{}

func (testConfig) GetPort() string                { return "8080" }
func (testConfig) GetCORSAllowOrigins() []string  { return nil }
func (testConfig) GetRateLimitPerSecond() float64 { return 1000 }
func (testConfig) GetPageCacheTTL() time.Duration { return time.Minute }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func setupRouter(uc *mocks.MockEngagementUsecase, pages *store.MemoryPageCache, pinger fakePinger) *gin.Engine {
	r := gin.New()
	handler.NewRouter(uc, pages, pinger, nopLogger{}, testConfig{}, uuidgen.NewGenerator()).SetupRoutes(r)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLikes(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodGet, "/api/v1/posts/hello-world/likes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":3}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/posts/hello-world/likes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":4}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/v1/posts/hello-world/likes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":3}`, w.Body.String())
}

func TestLikes_SoftFailIsStillOK(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	uc.ShouldFailAddLike = true
	r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodPost, "/api/v1/posts/hello-world/likes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":0}`, w.Body.String())
}

func TestInvalidSlug(t *testing.T) {
	r := setupRouter(mocks.NewMockEngagementUsecase(), store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	for _, path := range []string{
		"/api/v1/posts/bad%20slug/likes",
		"/api/v1/posts/" + strings.Repeat("a", 201) + "/likes",
		"/api/v1/posts/%3Cscript%3E/comments",
	} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Invalid post slug")
	}
}

func TestGetComments(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodGet, "/api/v1/posts/hello-world/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CommentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Nice post", resp.Comments[0].Text)

	uc.Comments = nil
	w = do(r, http.MethodGet, "/api/v1/posts/hello-world/comments", "")
	assert.JSONEq(t, `{"comments":[]}`, w.Body.String())
}

func TestCreateComment(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodPost, "/api/v1/posts/hello-world/comments", `{"text":"  Great read  ","author":"Bo"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1700000000001-zyxwvutsr", resp.ID)
	assert.Equal(t, "  Great read  ", uc.LastText, "normalization is left to the action")
	assert.Equal(t, "Bo", uc.LastAuthor)
}

func TestCreateComment_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		fail    bool
		code    int
		message string
	}{
		{"empty text", `{"text":"   "}`, false, http.StatusBadRequest, "Please enter a comment"},
		{"missing text", `{"author":"Bo"}`, false, http.StatusBadRequest, "Please enter a comment"},
		{"too long", `{"text":"` + strings.Repeat("é", entity.MaxCommentTextLength+1) + `"}`, false, http.StatusBadRequest, "Comment is too long (max 1000 characters)"},
		{"bad json", `{"text":`, false, http.StatusBadRequest, "Invalid request body"},
		{"store failure", `{"text":"hi"}`, true, http.StatusBadGateway, "Failed to post comment. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockEngagementUsecase()
			uc.ShouldFailAddComment = tt.fail
			r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

			w := do(r, http.MethodPost, "/api/v1/posts/hello-world/comments", tt.body)
			assert.Equal(t, tt.code, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestCreateComment_ExactlyMaxLength(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	r := setupRouter(uc, store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodPost, "/api/v1/posts/hello-world/comments", `{"text":"`+strings.Repeat("é", entity.MaxCommentTextLength)+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetEngagement_Cached(t *testing.T) {
	uc := mocks.NewMockEngagementUsecase()
	pages := store.NewMemoryPageCache(time.Minute, 10)
	r := setupRouter(uc, pages, fakePinger{})

	w := do(r, http.MethodGet, "/api/v1/posts/hello-world/engagement", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	var resp dto.EngagementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Likes)
	assert.Len(t, resp.Comments, 1)

	w = do(r, http.MethodGet, "/api/v1/posts/hello-world/engagement", "")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, 1, uc.SnapshotCalls())

	require.NoError(t, pages.Invalidate(context.Background(), entity.PostPath("hello-world")))
	w = do(r, http.MethodGet, "/api/v1/posts/hello-world/engagement", "")
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, uc.SnapshotCalls())
}

func TestHealth(t *testing.T) {
	r := setupRouter(mocks.NewMockEngagementUsecase(), store.NewMemoryPageCache(time.Minute, 10), fakePinger{})
	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	r = setupRouter(mocks.NewMockEngagementUsecase(), store.NewMemoryPageCache(time.Minute, 10), fakePinger{err: errors.New("store not configured")})
	w = do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}

func TestRouter_Ambient(t *testing.T) {
	r := setupRouter(mocks.NewMockEngagementUsecase(), store.NewMemoryPageCache(time.Minute, 10), fakePinger{})

	w := do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
