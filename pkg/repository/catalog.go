package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/catalog"
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// Catalog is an immutable, in-memory vulnerability catalog
type Catalog struct {
	version string
	records []*model.Vulnerability
}

// NewMemory creates a catalog holding the given records as-is
func NewMemory(records ...*model.Vulnerability) *Catalog {
	return &Catalog{records: records}
}

// NewEmbedded creates a catalog from the data bundled into the binary
func NewEmbedded(ctx context.Context) *Catalog {
	return parseCatalog(ctx, catalog.Vulnerabilities, "embedded")
}

// NewFile creates a catalog from a JSON file. A missing or malformed file
// yields an empty catalog; the failure is logged, not returned.
func NewFile(ctx context.Context, path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to read vulnerability catalog, serving empty catalog",
			slog.String("path", path),
			slog.Any("error", goerr.Wrap(err, "failed to read catalog file")),
		)
		return &Catalog{}
	}
	return parseCatalog(ctx, data, path)
}

// Vulnerabilities returns all records in catalog order
func (c *Catalog) Vulnerabilities(ctx context.Context) []*model.Vulnerability {
	return c.records
}

// Version returns the catalog document version, if any
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

func parseCatalog(ctx context.Context, data []byte, source string) *Catalog {
	logger := ctxlog.From(ctx)

	var doc model.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("failed to parse vulnerability catalog, serving empty catalog",
			slog.String("source", source),
			slog.Any("error", goerr.Wrap(err, "invalid catalog JSON")),
		)
		return &Catalog{}
	}

	records := make([]*model.Vulnerability, 0, len(doc.Vulnerabilities))
	seen := make(map[types.VulnerabilityID]bool, len(doc.Vulnerabilities))
	for i, v := range doc.Vulnerabilities {
		if v == nil {
			continue
		}
		if err := v.Validate(); err != nil {
			logger.Warn("skipping invalid catalog record",
				slog.String("source", source),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			continue
		}
		if seen[v.ID] {
			logger.Warn("skipping duplicate catalog record",
				slog.String("source", source),
				slog.String("id", v.ID.String()),
			)
			continue
		}
		seen[v.ID] = true
		records = append(records, v)
	}

	logger.Debug("vulnerability catalog loaded",
		slog.String("source", source),
		slog.String("version", doc.Version),
		slog.Int("count", len(records)),
	)

	return &Catalog{
		version: doc.Version,
		records: records,
	}
}
