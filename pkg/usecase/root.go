package usecase

import (
	"context"

	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

const (
	serviceName        = "VulnAPI"
	implementationName = "Go/chi"
	implementationID   = "go-chi"
	welcomeMessage     = "Welcome to VulnAPI - A deliberately vulnerable API"
	healthyStatus      = "healthy"
)

// Root serves static service metadata
type Root struct {
	version string
	mode    types.Mode
}

// NewRoot creates a new Root use case
func NewRoot(version string, mode types.Mode) *Root {
	return &Root{
		version: version,
		mode:    mode,
	}
}

// Info returns the service identity
func (uc *Root) Info(ctx context.Context) *model.RootInfo {
	return &model.RootInfo{
		Name:           serviceName,
		Version:        uc.version,
		Mode:           uc.mode,
		Implementation: implementationName,
		Message:        welcomeMessage,
	}
}

// Health returns the liveness status
func (uc *Root) Health(ctx context.Context) *model.HealthStatus {
	return &model.HealthStatus{
		Status:         healthyStatus,
		Implementation: implementationID,
	}
}
