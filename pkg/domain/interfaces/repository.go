package interfaces

import (
	"context"

	"github.com/secmon-lab/vulnapi/pkg/domain/model"
)

// Catalog provides read-only access to the vulnerability catalog.
// Implementations must return records in catalog order and must not
// change them after construction.
type Catalog interface {
	Vulnerabilities(ctx context.Context) []*model.Vulnerability
}
