package pagination

import (
	"sort"

	"github.com/rshade/carbonlens/internal/engine"
)

// Sorter orders batch results.
type Sorter interface {
	// Sort returns a sorted copy of results.
	Sort(results []engine.BatchResult, field, order string) []engine.BatchResult
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns the valid field names in sorted order.
	GetValidFields() []string
}

// BatchSorter implements Sorter for engine.BatchResult.
type BatchSorter struct {
	validFields map[string]bool
}

// NewBatchSorter creates a BatchSorter for name and the four footprint
// figures.
func NewBatchSorter() *BatchSorter {
	return &BatchSorter{
		validFields: map[string]bool{
			"name":   true,
			"energy": true,
			"waste":  true,
			"travel": true,
			"total":  true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *BatchSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *BatchSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns results ordered by field. Failed results always sort last
// in their original order. An invalid field returns results unchanged.
func (s *BatchSorter) Sort(results []engine.BatchResult, field, order string) []engine.BatchResult {
	if !s.IsValidField(field) {
		return results
	}

	sorted := make([]engine.BatchResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aOK, bOK := a.Assessment != nil && a.Err == nil, b.Assessment != nil && b.Err == nil
		if aOK != bOK {
			return aOK
		}
		if !aOK {
			return false
		}
		if order == SortOrderDesc {
			a, b = b, a
		}
		if field == "name" {
			return a.Name < b.Name
		}
		return value(a, field) < value(b, field)
	})
	return sorted
}

func value(r engine.BatchResult, field string) float64 {
	res := r.Assessment.Result
	switch field {
	case "energy":
		return res.Energy
	case "waste":
		return res.Waste
	case "travel":
		return res.Travel
	default:
		return res.Total
	}
}
