package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Limits and sort defaults.
const (
	DefaultLimit     = 0
	MaxLimit         = 10000
	DefaultSortOrder = SortOrderDesc
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"

	sortPartsMax = 2
)

// Common validation errors.
var (
	ErrInvalidLimit      = fmt.Errorf("limit must be between 0 and %d", MaxLimit)
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'total:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the --sort and --limit flags. Limit 0 means no limit.
type Params struct {
	Limit int
	Sort  string
}

// Validate checks the limit range and, when set, the sort expression
// against the fields the sorter supports.
func (p Params) Validate(sorter Sorter) error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	if p.Sort == "" {
		return nil
	}
	field, _, err := ParseSort(p.Sort)
	if err != nil {
		return err
	}
	if !sorter.IsValidField(field) {
		return fmt.Errorf("%w %q: valid fields are %s",
			ErrInvalidSortField, field, strings.Join(sorter.GetValidFields(), ", "))
	}
	return nil
}

// ParseSort parses "field" or "field:order". The order defaults to desc.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	parts := strings.Split(sortStr, ":")
	if len(parts) > sortPartsMax {
		return "", "", ErrInvalidSortFormat
	}

	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}

	order = DefaultSortOrder
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", ErrInvalidSortOrder
	}
	return field, order, nil
}

// Apply truncates items to limit. A limit of 0 or one at least as large as
// the slice returns items unchanged.
func Apply[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
