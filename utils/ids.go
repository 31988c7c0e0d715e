package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces collision-resistant entity ids.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator hands out prefix-1, prefix-2, ... and is meant for tests.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
