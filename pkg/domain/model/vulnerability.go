package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// Vulnerability is a single catalog entry describing one intentionally
// vulnerable endpoint. Records are shared read-only between requests.
type Vulnerability struct {
	ID                 types.VulnerabilityID `json:"id"`
	Name               string                `json:"name"`
	Category           string                `json:"category"`
	Severity           string                `json:"severity"`
	OWASP              string                `json:"owasp"`
	CWE                string                `json:"cwe"`
	Description        string                `json:"description"`
	VulnerableEndpoint string                `json:"vulnerable_endpoint,omitempty"`
	Exploitation       *Exploitation         `json:"exploitation,omitempty"`
	VulnerableCode     string                `json:"vulnerable_code"`
	SecureCode         string                `json:"secure_code"`
	Remediation        []string              `json:"remediation"`
	References         []string              `json:"references,omitempty"`
	Flag               string                `json:"flag,omitempty"`
}

// Exploitation describes how the vulnerability is triggered
type Exploitation struct {
	Steps           []string `json:"steps"`
	ExampleRequest  string   `json:"example_request"`
	ExampleResponse string   `json:"example_response"`
}

// Validate validates the vulnerability record
func (v *Vulnerability) Validate() error {
	if err := v.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid vulnerability ID")
	}
	if v.Name == "" {
		return goerr.New("vulnerability name is required", goerr.V("id", v.ID))
	}
	if v.Category == "" {
		return goerr.New("vulnerability category is required", goerr.V("id", v.ID))
	}
	if v.Severity == "" {
		return goerr.New("vulnerability severity is required", goerr.V("id", v.ID))
	}
	return nil
}

// Public returns the subset of fields shown in list views
func (v *Vulnerability) Public() *PublicVulnerability {
	return &PublicVulnerability{
		ID:          v.ID,
		Name:        v.Name,
		Category:    v.Category,
		Severity:    v.Severity,
		OWASP:       v.OWASP,
		CWE:         v.CWE,
		Description: v.Description,
	}
}

// PublicVulnerability is the list-view projection of a Vulnerability.
// It never carries code samples, remediation or exploitation details.
type PublicVulnerability struct {
	ID          types.VulnerabilityID `json:"id"`
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Severity    string                `json:"severity"`
	OWASP       string                `json:"owasp"`
	CWE         string                `json:"cwe"`
	Description string                `json:"description"`
}

// CatalogDocument is the on-disk shape of the vulnerability catalog
type CatalogDocument struct {
	Version         string           `json:"version"`
	Vulnerabilities []*Vulnerability `json:"vulnerabilities"`
}
