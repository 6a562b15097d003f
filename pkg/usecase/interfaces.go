package usecase

import (
	"context"

	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// DocsUseCase defines the interface for vulnerability documentation
type DocsUseCase interface {
	// Mode describes the current operating mode
	Mode(ctx context.Context) *model.ModeInfo

	// Stats returns aggregate counts over the catalog
	Stats(ctx context.Context) *model.Stats

	// Categories returns one summary per category
	Categories(ctx context.Context) []*model.CategorySummary

	// ListVulnerabilities returns public fields of matching records
	ListVulnerabilities(ctx context.Context, category, severity string) []*model.PublicVulnerability

	// GetVulnerability returns the full record (documentation mode only)
	GetVulnerability(ctx context.Context, id types.VulnerabilityID) (*model.Vulnerability, error)

	// Compare returns the vulnerable/secure code comparison
	Compare(ctx context.Context, id types.VulnerabilityID) (*model.Comparison, error)

	// ListComparisons returns the comparison index
	ListComparisons(ctx context.Context) []*model.ComparisonSummary

	// CurrentMode returns the configured mode
	CurrentMode() types.Mode
}

// RootUseCase defines the interface for service metadata
type RootUseCase interface {
	Info(ctx context.Context) *model.RootInfo
	Health(ctx context.Context) *model.HealthStatus
}

var (
	_ DocsUseCase = (*Docs)(nil)
	_ RootUseCase = (*Root)(nil)
)
