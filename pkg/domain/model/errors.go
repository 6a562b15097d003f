package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrVulnerabilityNotFound = goerr.New("vulnerability not found")
	ErrDocumentationDisabled = goerr.New("documentation mode is disabled")
)
