package pkg

import "strconv"

// Ellipsis is the page-selector token standing in for a run of skipped pages.
const Ellipsis = "..."

// ButtonTokens computes the page-selector token sequence for the given
// position. Each token is either a page number rendered as a string or the
// Ellipsis marker.
//
// The windowing is intentionally asymmetric: with four or fewer pages every
// page gets a button; otherwise a three-page run anchored just left of the
// current page is followed by an ellipsis and the final page, except near the
// end where the last five pages are listed with no ellipsis at all. The shape
// is kept bit-for-bit compatible with the admin dashboard's selector, which
// client snapshot tests pin down.
func ButtonTokens(totalCount, limit, currentPage int) []string {
	if limit <= 0 {
		return []string{}
	}
	lastPage := (totalCount + limit - 1) / limit

	if lastPage <= 4 {
		tokens := make([]string, 0, lastPage)
		for page := 1; page <= lastPage; page++ {
			tokens = append(tokens, strconv.Itoa(page))
		}
		return tokens
	}

	rangeStart := max(1, currentPage-1)
	rangeEnd := min(currentPage+1, lastPage)

	if rangeEnd >= lastPage-1 {
		// Near the end: up to three pages leading in, then the final two.
		tokens := make([]string, 0, 5)
		if lastPage-3 > 1 {
			for i := 0; i < 3; i++ {
				tokens = append(tokens, strconv.Itoa(lastPage-4+i))
			}
		}
		tokens = append(tokens, strconv.Itoa(lastPage-1), strconv.Itoa(lastPage))
		return tokens
	}

	return []string{
		strconv.Itoa(rangeStart),
		strconv.Itoa(rangeStart + 1),
		strconv.Itoa(rangeStart + 2),
		Ellipsis,
		strconv.Itoa(lastPage),
	}
}
