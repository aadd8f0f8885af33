// Package pagination computes page windows for the sorted user listing:
// parameter validation, boundary flags, and total counts. Validation is pure
// and happens before any storage access.
package pagination

import "github.com/dmitrijs2005/userbook/internal/common"

// Params are the raw paging parameters of a users query.
type Params struct {
	PerPage int
	Skip    int
}

// Validate checks the paging bounds: at least one user per page, and a
// non-negative skip. A violation fails before storage is touched.
func (p Params) Validate() error {
	if p.PerPage < 1 || p.Skip < 0 {
		return common.NewInvalidRequest()
	}
	return nil
}

// Window describes one page of an ordered collection relative to the whole:
// the total size and whether more data exists before/after this slice.
type Window struct {
	Total     int
	HasBefore bool
	HasAfter  bool
}

// NewWindow derives the boundary flags for a page. An empty page (skip past
// the end) is valid: it has nothing after it, and something before it iff
// any rows were skipped.
func NewWindow(p Params, returned, total int) Window {
	return Window{
		Total:     total,
		HasBefore: p.Skip > 0,
		HasAfter:  p.Skip+returned < total,
	}
}
