// Package pagination computes the page-button window shown under paginated listings.
package pagination

// Radius is how many pages either side of the current page are always shown.
const Radius = 2

// Marker is one element of a page window: a page number or an ellipsis.
type Marker struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Window returns the ordered page markers for the given position.
// Page 1, page total and every page within Radius of current are included;
// each run of skipped pages collapses into a single ellipsis marker.
// It returns nil when there are no pages.
func Window(current, total int) []Marker {
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	markers := make([]Marker, 0, 2*Radius+5)
	last := 0
	for page := 1; page <= total; page++ {
		if !included(page, current, total) {
			continue
		}
		if page-last > 1 {
			markers = append(markers, Marker{Ellipsis: true})
		}
		markers = append(markers, Marker{Page: page, Current: page == current})
		last = page
	}
	return markers
}

func included(page, current, total int) bool {
	return page == 1 || page == total || (page >= current-Radius && page <= current+Radius)
}
