package utils

import "github.com/google/uuid"

// UUIDGenerator issues account identifiers and trace ids. Version 7 ids sort
// by creation time; a random v4 id is issued when the v7 source fails.
type UUIDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newID: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
