package model

import "github.com/secmon-lab/vulnapi/pkg/domain/types"

// Stats holds aggregate counts over the catalog
type Stats struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	ByCategory map[string]int `json:"by_category"`
	RESTAPI    int            `json:"rest_api"`
	GraphQL    int            `json:"graphql"`
}

// CategorySummary lists the vulnerabilities sharing a category
type CategorySummary struct {
	Name            string                  `json:"name"`
	Count           int                     `json:"count"`
	Vulnerabilities []types.VulnerabilityID `json:"vulnerabilities"`
}

// Comparison shows vulnerable and secure code side by side
type Comparison struct {
	ID             types.VulnerabilityID `json:"id"`
	Name           string                `json:"name"`
	VulnerableCode string                `json:"vulnerable_code"`
	SecureCode     string                `json:"secure_code"`
	KeyDifference  string                `json:"key_difference"`
	Remediation    []string              `json:"remediation"`
	OWASP          string                `json:"owasp"`
	CWE            string                `json:"cwe"`
}

// ComparisonSummary is an entry of the comparison index
type ComparisonSummary struct {
	ID            types.VulnerabilityID `json:"id"`
	Name          string                `json:"name"`
	KeyDifference string                `json:"key_difference"`
}
