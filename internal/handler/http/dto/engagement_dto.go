package dto

import "github.com/mikiasgoitom/folio/internal/domain/entity"

// PostURI binds the :slug path parameter.
type PostURI struct {
	Slug string `uri:"slug" binding:"required,max=200,slug"`
}

// CreateCommentRequest is the body of POST /posts/:slug/comments.
// Length rules are checked by the handler so the messages match the form.
type CreateCommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type LikesResponse struct {
	Likes int64 `json:"likes"`
}

// CommentResponse is the DTO for a comment.
type CommentResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}

type CommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// EngagementResponse is the cached payload used to hydrate a post page.
type EngagementResponse struct {
	Likes    int64             `json:"likes"`
	Comments []CommentResponse `json:"comments"`
}

// ToCommentResponse converts an entity.Comment to a CommentResponse DTO.
func ToCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}

// ToCommentResponses never returns nil so the list encodes as [].
func ToCommentResponses(comments []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}

func ToEngagementResponse(s entity.EngagementSnapshot) EngagementResponse {
	return EngagementResponse{
		Likes:    s.Likes,
		Comments: ToCommentResponses(s.Comments),
	}
}
