package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

// Generator issues and checks request identifiers.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID returns a random (v4) UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// Valid reports whether id parses as a UUID. Incoming request ids are only
// propagated when they do.
func (g *Generator) Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
