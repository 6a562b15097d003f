package types

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// VulnerabilityID represents a catalog entry identifier such as "V01" or "G03"
type VulnerabilityID string

var vulnerabilityIDPattern = regexp.MustCompile(`^[A-Z]\d{2}$`)

// restPrefix marks vulnerabilities of the REST API surface
const restPrefix = "V"

// String returns the string representation
func (id VulnerabilityID) String() string {
	return string(id)
}

// Validate checks that the ID is one upper-case letter followed by two digits
func (id VulnerabilityID) Validate() error {
	if id == "" {
		return goerr.New("vulnerability ID is empty")
	}
	if !vulnerabilityIDPattern.MatchString(string(id)) {
		return goerr.New("invalid vulnerability ID format", goerr.V("id", id))
	}
	return nil
}

// IsREST returns true if the vulnerability belongs to the REST API.
// Every other prefix is counted as GraphQL.
func (id VulnerabilityID) IsREST() bool {
	return strings.HasPrefix(string(id), restPrefix)
}

// IsGraphQL returns true if the vulnerability does not belong to the REST API
func (id VulnerabilityID) IsGraphQL() bool {
	return !id.IsREST()
}
