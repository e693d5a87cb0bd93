package uuidgen_test

import (
	"testing"

	"github.com/mikiasgoitom/folio/internal/infrastructure/uuidgen"
	"github.com/stretchr/testify/assert"
)

func TestGenerator(t *testing.T) {
	gen := uuidgen.NewGenerator()
	id := gen.NewUUID()

	assert.True(t, gen.Valid(id))
	assert.NotEqual(t, id, gen.NewUUID())
	assert.False(t, gen.Valid("not-a-uuid"))
	assert.False(t, gen.Valid(""))
}
