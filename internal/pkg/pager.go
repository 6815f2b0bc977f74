package pkg

// StepDirection selects the neighbor page for Pager.Step.
type StepDirection int

const (
	StepPrev StepDirection = iota
	StepNext
)

// Pager tracks the view window over a collection: page size, current page,
// total count, and the active keyword filter. All transitions are pure state
// changes; the caller fetches data and reports the result size via SetTotal.
//
// The current page is always kept inside [1, LastPage]. The legacy dashboard
// sometimes let the page run past the end and showed an empty window; Pager
// clamps instead.
type Pager struct {
	limit   int
	page    int
	total   int
	keyword string
}

// NewPager creates a Pager on page 1 with the given page size.
// A non-positive limit falls back to the parser default.
func NewPager(limit int) *Pager {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return &Pager{limit: limit, page: 1}
}

// Limit returns the current page size.
func (p *Pager) Limit() int { return p.limit }

// Page returns the current 1-based page number.
func (p *Pager) Page() int { return p.page }

// Total returns the last reported total record count.
func (p *Pager) Total() int { return p.total }

// Keyword returns the active filter keyword.
func (p *Pager) Keyword() string { return p.keyword }

// LastPage returns the number of the final page, at least 1 so an empty
// collection still has a valid current page.
func (p *Pager) LastPage() int {
	last := (p.total + p.limit - 1) / p.limit
	if last < 1 {
		return 1
	}
	return last
}

// SetTotal records the collection size and clamps the current page so the
// window never points past the new end.
func (p *Pager) SetTotal(totalCount int) {
	if totalCount < 0 {
		totalCount = 0
	}
	p.total = totalCount
	if p.page > p.LastPage() {
		p.page = p.LastPage()
	}
}

// SetLimit changes the page size and resets to page 1, since the old page
// number is meaningless under a new window size.
func (p *Pager) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	p.limit = limit
	p.page = 1
}

// GoToPage moves to page n, clamped into [1, LastPage].
func (p *Pager) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if last := p.LastPage(); n > last {
		n = last
	}
	p.page = n
}

// Step moves one page backward or forward. Stepping past either end is a no-op.
func (p *Pager) Step(dir StepDirection) {
	switch dir {
	case StepPrev:
		if p.page > 1 {
			p.page--
		}
	case StepNext:
		if p.page < p.LastPage() {
			p.page++
		}
	}
}

// ResetPage returns to page 1.
func (p *Pager) ResetPage() { p.page = 1 }

// SetKeyword updates the filter keyword. A changed keyword resets the page
// first, so a stale page of the previous result set is never requested.
func (p *Pager) SetKeyword(keyword string) {
	if keyword == p.keyword {
		return
	}
	p.keyword = keyword
	p.ResetPage()
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.page > 1 }

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.page < p.LastPage() }

// Buttons returns the page-selector tokens for the current position.
func (p *Pager) Buttons() []string {
	return ButtonTokens(p.total, p.limit, p.page)
}

// Window returns the slice of items visible on the given 1-based page.
// It is a pure projection; out-of-range pages yield an empty slice.
func Window[T any](items []T, page, limit int) []T {
	if page < 1 || limit <= 0 {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
