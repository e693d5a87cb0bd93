package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/handler/http/dto"
	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

const (
	msgInvalidSlug    = "Invalid post slug"
	msgEmptyComment   = "Please enter a comment"
	msgCommentTooLong = "Comment is too long (max 1000 characters)"
	msgCommentFailed  = "Failed to post comment. Please try again."
	msgInvalidBody    = "Invalid request body"
	cacheStatusHeader = "X-Cache"
	jsonContentType   = "application/json; charset=utf-8"
)

// EngagementHandlerInterface lets the router and tests swap the handler.
type EngagementHandlerInterface interface {
	GetLikes(c *gin.Context)
	AddLike(c *gin.Context)
	RemoveLike(c *gin.Context)
	GetComments(c *gin.Context)
	CreateComment(c *gin.Context)
	GetEngagement(c *gin.Context)
}

type EngagementHandler struct {
	engagementUC usecasecontract.IEngagementUseCase
	pageCache    contract.IPageCache
	logger       usecasecontract.IAppLogger
}

func NewEngagementHandler(engagementUC usecasecontract.IEngagementUseCase, pageCache contract.IPageCache, logger usecasecontract.IAppLogger) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: engagementUC,
		pageCache:    pageCache,
		logger:       logger,
	}
}

var _ EngagementHandlerInterface = (*EngagementHandler)(nil)

func bindSlug(c *gin.Context) (string, bool) {
	var uri dto.PostURI
	if err := c.ShouldBindUri(&uri); err != nil {
		ErrorHandler(c, http.StatusBadRequest, msgInvalidSlug)
		return "", false
	}
	return uri.Slug, true
}

func (h *EngagementHandler) GetLikes(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikesResponse{Likes: h.engagementUC.GetLikes(c.Request.Context(), slug)})
}

func (h *EngagementHandler) AddLike(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikesResponse{Likes: h.engagementUC.AddLike(c.Request.Context(), slug)})
}

func (h *EngagementHandler) RemoveLike(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikesResponse{Likes: h.engagementUC.RemoveLike(c.Request.Context(), slug)})
}

func (h *EngagementHandler) GetComments(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	comments := h.engagementUC.GetComments(c.Request.Context(), slug)
	SuccessHandler(c, http.StatusOK, dto.CommentsResponse{Comments: dto.ToCommentResponses(comments)})
}

func (h *EngagementHandler) CreateComment(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		ErrorHandler(c, http.StatusBadRequest, msgEmptyComment)
		return
	}
	if utf8.RuneCountInString(text) > entity.MaxCommentTextLength {
		ErrorHandler(c, http.StatusBadRequest, msgCommentTooLong)
		return
	}

	comment := h.engagementUC.AddComment(c.Request.Context(), slug, req.Text, req.Author)
	if comment == nil {
		ErrorHandler(c, http.StatusBadGateway, msgCommentFailed)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(*comment))
}

// GetEngagement serves the likes and comments of a post from the page cache,
// rendering and caching them on a miss. Mutations drop the entry through the
// revalidation dispatcher.
func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	slug, ok := bindSlug(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	path := entity.PostPath(slug)

	body, hit, err := h.pageCache.Get(ctx, path)
	switch {
	case err != nil:
		metrics.PageCacheRequests.WithLabelValues("error").Inc()
		h.logger.Warnf("page cache read failed for %s: %v", path, err)
	case hit:
		metrics.PageCacheRequests.WithLabelValues("hit").Inc()
		c.Header(cacheStatusHeader, "HIT")
		c.Data(http.StatusOK, jsonContentType, body)
		return
	default:
		metrics.PageCacheRequests.WithLabelValues("miss").Inc()
	}

	snapshot := dto.ToEngagementResponse(h.engagementUC.GetSnapshot(ctx, slug))
	body, err = json.Marshal(snapshot)
	if err != nil {
		h.logger.Errorf("failed to encode engagement for %s: %v", path, err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load engagement")
		return
	}
	if err := h.pageCache.Set(ctx, path, body); err != nil {
		h.logger.Warnf("page cache write failed for %s: %v", path, err)
	}
	c.Header(cacheStatusHeader, "MISS")
	c.Data(http.StatusOK, jsonContentType, body)
}
