package randomgenerator_test

import (
	"regexp"
	"testing"

	randomgenerator "github.com/mikiasgoitom/folio/internal/infrastructure/random_generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuffix(t *testing.T) {
	gen := randomgenerator.NewRandomGenerator()
	pattern := regexp.MustCompile(`^[0-9a-z]{9}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		s, err := gen.GenerateSuffix(9)
		require.NoError(t, err)
		assert.Regexp(t, pattern, s)
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, 200)
}

func TestGenerateSuffix_Empty(t *testing.T) {
	s, err := randomgenerator.NewRandomGenerator().GenerateSuffix(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}
