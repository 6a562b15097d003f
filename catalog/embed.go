package catalog

import (
	_ "embed"
)

// Vulnerabilities is the bundled vulnerability catalog (JSON)
//
//go:embed vulnerabilities.json
var Vulnerabilities []byte

// KeyDifferences is the bundled key difference table (YAML)
//
//go:embed key_differences.yaml
var KeyDifferences []byte
