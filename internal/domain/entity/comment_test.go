package entity_test

import (
	"strings"
	"testing"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCommentInput(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		author     string
		wantText   string
		wantAuthor string
		wantErr    error
	}{
		{name: "trims both", text: "  hello  ", author: "  Bob  ", wantText: "hello", wantAuthor: "Bob"},
		{name: "blank author defaults", text: "hi", author: "", wantText: "hi", wantAuthor: entity.DefaultCommentAuthor},
		{name: "whitespace author defaults", text: "hi", author: " \t ", wantText: "hi", wantAuthor: entity.DefaultCommentAuthor},
		{name: "empty text", text: "", author: "X", wantErr: entity.ErrInvalidComment},
		{name: "whitespace text", text: "   \n ", author: "X", wantErr: entity.ErrInvalidComment},
		{name: "text at limit", text: strings.Repeat("a", 1000), author: "X", wantText: strings.Repeat("a", 1000), wantAuthor: "X"},
		{name: "text over limit", text: strings.Repeat("a", 1001), author: "X", wantErr: entity.ErrInvalidComment},
		{name: "padding does not count", text: "  " + strings.Repeat("a", 1000) + "  ", author: "X", wantText: strings.Repeat("a", 1000), wantAuthor: "X"},
		{name: "multibyte counted as characters", text: strings.Repeat("é", 1000), author: "X", wantText: strings.Repeat("é", 1000), wantAuthor: "X"},
		{name: "author truncated", text: "hi", author: strings.Repeat("b", 60), wantText: "hi", wantAuthor: strings.Repeat("b", 50)},
		{name: "multibyte author truncated", text: "hi", author: strings.Repeat("ж", 55), wantText: "hi", wantAuthor: strings.Repeat("ж", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, author, err := entity.NormalizeCommentInput(tt.text, tt.author)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantAuthor, author)
		})
	}
}

func TestPostPath(t *testing.T) {
	assert.Equal(t, "/blogs/hello-world", entity.PostPath("hello-world"))
}
