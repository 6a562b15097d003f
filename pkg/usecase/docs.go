package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/pkg/domain/interfaces"
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// Docs serves documentation about the vulnerability catalog
type Docs struct {
	catalog        interfaces.Catalog
	keyDifferences *model.KeyDifferences
	mode           types.Mode
}

// NewDocs creates a new Docs use case. The mode is fixed for the lifetime
// of the instance.
func NewDocs(catalog interfaces.Catalog, keyDifferences *model.KeyDifferences, mode types.Mode) *Docs {
	return &Docs{
		catalog:        catalog,
		keyDifferences: keyDifferences,
		mode:           mode,
	}
}

// Mode describes the current operating mode
func (uc *Docs) Mode(ctx context.Context) *model.ModeInfo {
	return model.NewModeInfo(uc.mode)
}

// Stats returns aggregate counts over the whole catalog
func (uc *Docs) Stats(ctx context.Context) *model.Stats {
	return Stats(uc.catalog.Vulnerabilities(ctx))
}

// Categories returns one summary per category
func (uc *Docs) Categories(ctx context.Context) []*model.CategorySummary {
	return Categorize(uc.catalog.Vulnerabilities(ctx))
}

// ListVulnerabilities returns public fields of records matching the filters
func (uc *Docs) ListVulnerabilities(ctx context.Context, category, severity string) []*model.PublicVulnerability {
	return Filter(uc.catalog.Vulnerabilities(ctx), category, severity)
}

// GetVulnerability returns the full record. Only available in documentation mode.
func (uc *Docs) GetVulnerability(ctx context.Context, id types.VulnerabilityID) (*model.Vulnerability, error) {
	if !uc.mode.IsDocumentation() {
		return nil, goerr.Wrap(model.ErrDocumentationDisabled, "vulnerability details are not available",
			goerr.V("mode", uc.mode),
			goerr.V("id", id))
	}

	v := findVulnerability(uc.catalog.Vulnerabilities(ctx), id)
	if v == nil {
		return nil, goerr.Wrap(model.ErrVulnerabilityNotFound, "failed to get vulnerability", goerr.V("id", id))
	}
	return v, nil
}

// Compare returns vulnerable and secure code side by side. Available in every mode.
func (uc *Docs) Compare(ctx context.Context, id types.VulnerabilityID) (*model.Comparison, error) {
	v := findVulnerability(uc.catalog.Vulnerabilities(ctx), id)
	if v == nil {
		return nil, goerr.Wrap(model.ErrVulnerabilityNotFound, "failed to compare vulnerability", goerr.V("id", id))
	}

	return &model.Comparison{
		ID:             v.ID,
		Name:           v.Name,
		VulnerableCode: v.VulnerableCode,
		SecureCode:     v.SecureCode,
		KeyDifference:  uc.keyDifferences.Lookup(v.ID, model.DefaultKeyDifference),
		Remediation:    v.Remediation,
		OWASP:          v.OWASP,
		CWE:            v.CWE,
	}, nil
}

// ListComparisons returns the comparison index for every record
func (uc *Docs) ListComparisons(ctx context.Context) []*model.ComparisonSummary {
	records := uc.catalog.Vulnerabilities(ctx)
	result := make([]*model.ComparisonSummary, 0, len(records))
	for _, v := range records {
		result = append(result, &model.ComparisonSummary{
			ID:            v.ID,
			Name:          v.Name,
			KeyDifference: uc.keyDifferences.Lookup(v.ID, ""),
		})
	}
	return result
}

// CurrentMode returns the configured mode
func (uc *Docs) CurrentMode() types.Mode {
	return uc.mode
}
