package viewstate

import (
	"fmt"
	"math"
)

// PageSize is the maximum number of segments fetched per detail page.
const PageSize = 1000

// TotalPages is ceil(count/size); zero when there is nothing to show.
func TotalPages(count int64, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	s := int64(size)
	return int((count + s - 1) / s)
}

// PageRange returns the inclusive zero-based row range of a 1-based page.
func PageRange(page, size int) (from, to int) {
	from = (page - 1) * size
	return from, from + size - 1
}

// Pagination describes the page controls of a detail view.
type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	Visible    bool `json:"visible"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	Prev       int  `json:"prev"`
	Next       int  `json:"next"`
}

// NewPagination computes control visibility for page out of total.
// Controls are only shown when there is more than one page.
func NewPagination(page, total int) Pagination {
	p := Pagination{Page: page, TotalPages: total, Visible: total > 1}
	p.HasPrev = page > 1
	p.HasNext = page < total
	if p.HasPrev {
		p.Prev = page - 1
	}
	if p.HasNext {
		p.Next = page + 1
	}
	return p
}

// FormatTime renders seconds as M:SS. Minutes are unbounded and fractions
// are floored; negative input renders as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
