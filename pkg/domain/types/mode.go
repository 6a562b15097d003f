package types

import "github.com/m-mizutani/goerr/v2"

// Mode is the process-wide operating mode of the API
type Mode string

const (
	// ModeChallenge hides detailed vulnerability content
	ModeChallenge Mode = "challenge"
	// ModeDocumentation exposes full vulnerability records
	ModeDocumentation Mode = "documentation"
)

// DefaultMode is used when no mode is configured
const DefaultMode = ModeChallenge

// String returns the string representation of the mode
func (m Mode) String() string {
	return string(m)
}

// IsValid checks if the mode is one of the known modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeChallenge, ModeDocumentation:
		return true
	default:
		return false
	}
}

// IsDocumentation returns true if full vulnerability details may be exposed
func (m Mode) IsDocumentation() bool {
	return m == ModeDocumentation
}

// ParseMode converts a configuration string into a Mode.
// Empty string falls back to DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", goerr.New("invalid mode",
			goerr.V("mode", s),
			goerr.V("allowed", []Mode{ModeChallenge, ModeDocumentation}))
	}
	return m, nil
}
