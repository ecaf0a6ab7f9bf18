package source

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownSource means no constructor is registered for the selected
// source type.
var ErrUnknownSource = errors.New("unknown source type")

// Record is one district-month observation already reduced to the fields
// the pipeline stores, whatever the upstream called them.
type Record struct {
	District      string
	Month         string
	JobsGenerated int64
	PersonDays    int64
	WagesPaid     float64
}

// Source is the interface every MGNREGA data source implements. The
// pipeline does not care whether records come from a live API or a
// generator.
type Source interface {
	// Name returns the source name for logging purposes.
	Name() string

	// FetchDistrictStats fetches district-month records for one state.
	FetchDistrictStats(ctx context.Context, state string) ([]Record, error)
}

// sourceRegistry holds registered source constructors so new sources can be
// added without touching this package. Each source package registers itself
// from init().
var sourceRegistry = make(map[Type]func(Config) (Source, error))

// Register records a source constructor for a given source type.
func Register(t Type, constructor func(Config) (Source, error)) {
	sourceRegistry[t] = constructor
}

// New builds the source selected by cfg: data.gov.in when a resource id is
// configured, the synthetic demo generator otherwise.
func New(cfg Config) (Source, error) {
	constructor, ok := sourceRegistry[cfg.Type()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Type())
	}
	return constructor(cfg)
}
