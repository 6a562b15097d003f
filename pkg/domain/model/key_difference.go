package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// DefaultKeyDifference is shown by the comparison view when no hint is registered
const DefaultKeyDifference = "See secure_code for the fix"

// KeyDifference is a short educational hint for fixing one vulnerability
type KeyDifference struct {
	ID   types.VulnerabilityID `yaml:"id"`
	Hint string                `yaml:"hint"`
}

// KeyDifferencesConfig represents the key differences configuration
type KeyDifferencesConfig struct {
	KeyDifferences []KeyDifference `yaml:"key_differences"`
}

// Validate validates the key differences configuration
func (c *KeyDifferencesConfig) Validate() error {
	seen := make(map[types.VulnerabilityID]bool)
	for i, kd := range c.KeyDifferences {
		if err := kd.ID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid key difference at index", goerr.V("index", i))
		}
		if kd.Hint == "" {
			return goerr.New("key difference hint is required", goerr.V("id", kd.ID))
		}
		if seen[kd.ID] {
			return goerr.New("duplicate key difference ID", goerr.V("id", kd.ID))
		}
		seen[kd.ID] = true
	}
	return nil
}

// Table builds the immutable lookup table
func (c *KeyDifferencesConfig) Table() *KeyDifferences {
	m := make(map[types.VulnerabilityID]string, len(c.KeyDifferences))
	for _, kd := range c.KeyDifferences {
		m[kd.ID] = kd.Hint
	}
	return &KeyDifferences{hints: m}
}

// KeyDifferences maps vulnerability IDs to remediation hints. It is
// read-only once built and safe for concurrent use.
type KeyDifferences struct {
	hints map[types.VulnerabilityID]string
}

// Lookup returns the hint for id, or fallback if none is registered.
// A nil table behaves as an empty one.
func (k *KeyDifferences) Lookup(id types.VulnerabilityID, fallback string) string {
	if k == nil {
		return fallback
	}
	if hint, ok := k.hints[id]; ok {
		return hint
	}
	return fallback
}

// Len returns the number of registered hints
func (k *KeyDifferences) Len() int {
	if k == nil {
		return 0
	}
	return len(k.hints)
}
