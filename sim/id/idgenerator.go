// Package id generates globally unique identifiers for events, tasks, and
// messages.
package id

import "github.com/rs/xid"

// Generator produces unique identifiers.
type Generator interface {
	Generate() string
}

// NewGenerator returns the ID generator used by the current simulation.
func NewGenerator() Generator {
	return &xidGenerator{}
}

type xidGenerator struct{}

// Generate returns a new, sortable, globally unique ID.
func (g *xidGenerator) Generate() string {
	return xid.New().String()
}

var defaultGenerator = NewGenerator()

// Generate returns a new unique ID using the package-level default
// generator.
func Generate() string {
	return defaultGenerator.Generate()
}
