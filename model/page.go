// model/page.go
package model

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 500
)

// PageModel is both the paging request and its result.
type PageModel[T any] struct {
	Page               int    `json:"page" form:"page"`
	Size               int    `json:"size" form:"size"`
	SortName           string `json:"sortName" form:"sortName"`
	SortOrder          string `json:"sortOrder" form:"sortOrder"`
	QueryConditionJSON string `json:"queryConditionJson" form:"queryConditionJson"`
	Total              int64  `json:"total"`
	Data               []T    `json:"data"`
}

// Normalize clamps page and size into their valid ranges.
func (p *PageModel[T]) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
}

func (p *PageModel[T]) Offset() int {
	return (p.Page - 1) * p.Size
}

// Desc reports whether the requested sort order is descending.
func (p *PageModel[T]) Desc() bool {
	return strings.EqualFold(p.SortOrder, "desc")
}
