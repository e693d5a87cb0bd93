package entity

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxCommentTextLength is the maximum number of characters allowed in a comment body.
	MaxCommentTextLength = 1000
	// MaxCommentAuthorLength is the number of characters an author name is truncated to.
	MaxCommentAuthorLength = 50
	// DefaultCommentAuthor is used when a visitor leaves the name field blank.
	DefaultCommentAuthor = "Anonymous"
)

// Comment is a visitor comment on a blog post, stored newest first under comments:<slug>.
// Records written by older versions may lack fields; decoding leaves them zero.
type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
}

// EngagementSnapshot is the like count and comment list rendered on a post page.
type EngagementSnapshot struct {
	Likes    int64     `json:"likes"`
	Comments []Comment `json:"comments"`
}

// PostPath returns the page path of a blog post. Cached renderings are keyed by it.
func PostPath(slug string) string {
	return "/blogs/" + slug
}

// NormalizeCommentInput trims the raw text and author and applies the comment rules.
// An empty or over-long text yields ErrInvalidComment. A blank author becomes
// DefaultCommentAuthor and long names are truncated.
func NormalizeCommentInput(text, author string) (string, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", ErrInvalidComment
	}
	if utf8.RuneCountInString(text) > MaxCommentTextLength {
		return "", "", ErrInvalidComment
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultCommentAuthor
	}
	return text, truncateRunes(author, MaxCommentAuthorLength), nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
