package model

import "github.com/secmon-lab/vulnapi/pkg/domain/types"

const (
	documentationModeDescription = "Documentation mode: Full exploitation details and remediation"
	challengeModeDescription     = "Challenge mode: Limited information, find vulnerabilities yourself"
)

// ModeInfo describes the current operating mode
type ModeInfo struct {
	Mode                 types.Mode `json:"mode"`
	DocumentationEnabled bool       `json:"documentation_enabled"`
	Description          string     `json:"description"`
}

// NewModeInfo builds the descriptor for the given mode
func NewModeInfo(mode types.Mode) *ModeInfo {
	desc := challengeModeDescription
	if mode.IsDocumentation() {
		desc = documentationModeDescription
	}
	return &ModeInfo{
		Mode:                 mode,
		DocumentationEnabled: mode.IsDocumentation(),
		Description:          desc,
	}
}

// RootInfo is the identity returned by the root endpoint
type RootInfo struct {
	Name           string     `json:"name"`
	Version        string     `json:"version"`
	Mode           types.Mode `json:"mode"`
	Implementation string     `json:"implementation"`
	Message        string     `json:"message"`
}

// HealthStatus is the liveness probe response
type HealthStatus struct {
	Status         string `json:"status"`
	Implementation string `json:"implementation"`
}
