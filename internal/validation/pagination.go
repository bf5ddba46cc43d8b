package validation

import (
	"github.com/recipegenie/core/pkg/models"
)

// ComputePagination derives the paging block for a result set. Total pages
// are rounded up; an out-of-range page is passed through untouched for the
// caller to interpret.
func ComputePagination(total, page, pageSize int) (models.Pagination, error) {
	var errs Errors
	if pageSize <= 0 {
		errs = append(errs, &RangeError{Field: "page_size", Value: pageSize, Bound: "> 0"})
	}
	if total < 0 {
		errs = append(errs, &RangeError{Field: "total", Value: total, Bound: ">= 0"})
	}
	if len(errs) > 0 {
		return models.Pagination{}, errs
	}
	return models.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}
