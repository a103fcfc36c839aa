package paginator

// PageResponse is the JSON shape of a page. Items are newest first.
type PageResponse[R any] struct {
	Items      []R    `json:"items"`
	HasMore    bool   `json:"has_more"`
	HasPrev    bool   `json:"has_prev"`
	NextMarker string `json:"next_marker,omitempty"`
	PrevMarker string `json:"prev_marker,omitempty"`
}

// NewPageResponse presents p in display order, converting each item with conv and
// deriving the navigation markers with id.
func NewPageResponse[T, R any](p Page[T], id func(T) string, conv func(T) R) PageResponse[R] {
	ordered := p.Ordered()
	items := make([]R, len(ordered))
	for i, item := range ordered {
		items[i] = conv(item)
	}
	return PageResponse[R]{
		Items:      items,
		HasMore:    p.HasMore,
		HasPrev:    p.HasPrev,
		NextMarker: p.NextMarker(id),
		PrevMarker: p.PrevMarker(id),
	}
}
