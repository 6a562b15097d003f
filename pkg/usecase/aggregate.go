package usecase

import (
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
)

// Stats counts records by severity, category and API surface
func Stats(records []*model.Vulnerability) *model.Stats {
	stats := &model.Stats{
		Total:      len(records),
		BySeverity: make(map[string]int),
		ByCategory: make(map[string]int),
	}

	for _, v := range records {
		stats.BySeverity[v.Severity]++
		stats.ByCategory[v.Category]++
		if v.ID.IsREST() {
			stats.RESTAPI++
		} else {
			stats.GraphQL++
		}
	}

	return stats
}

// Categorize groups record IDs by category. Categories appear in order of
// first occurrence and IDs keep catalog order.
func Categorize(records []*model.Vulnerability) []*model.CategorySummary {
	result := []*model.CategorySummary{}
	index := make(map[string]*model.CategorySummary)

	for _, v := range records {
		summary, ok := index[v.Category]
		if !ok {
			summary = &model.CategorySummary{
				Name:            v.Category,
				Vulnerabilities: []types.VulnerabilityID{},
			}
			index[v.Category] = summary
			result = append(result, summary)
		}
		summary.Count++
		summary.Vulnerabilities = append(summary.Vulnerabilities, v.ID)
	}

	return result
}

// Filter returns the public projection of records matching both category and
// severity. An empty constraint matches everything.
func Filter(records []*model.Vulnerability, category, severity string) []*model.PublicVulnerability {
	result := []*model.PublicVulnerability{}
	for _, v := range records {
		if category != "" && v.Category != category {
			continue
		}
		if severity != "" && v.Severity != severity {
			continue
		}
		result = append(result, v.Public())
	}
	return result
}

func findVulnerability(records []*model.Vulnerability, id types.VulnerabilityID) *model.Vulnerability {
	for _, v := range records {
		if v.ID == id {
			return v
		}
	}
	return nil
}
