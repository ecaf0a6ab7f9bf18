package source

import "time"

// Type identifies which data source to use.
type Type string

const (
	TypeDataGov Type = "datagov"
	TypeDemo    Type = "demo"
)

// Config holds configuration for the MGNREGA data source.
type Config struct {
	// ResourceID is the data.gov.in dataset id. Empty selects the demo
	// source.
	ResourceID string

	// APIKey is the data.gov.in API key. The public sample key works for
	// low volumes, so it is optional.
	APIKey string

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// Endpoint overrides the data.gov.in base URL, mainly for tests.
	Endpoint string
}

// Type reports which source this configuration selects. Presence of a
// resource id is the only switch.
func (c Config) Type() Type {
	if c.ResourceID == "" {
		return TypeDemo
	}
	return TypeDataGov
}
