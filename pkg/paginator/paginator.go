package paginator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ResolveMarker turns the two mutually exclusive cursor parameters into a marker and direction.
// A previous-page marker wins over a next-page marker.
func ResolveMarker(prevMarker, nextMarker string) (string, Direction) {
	if prevMarker != "" {
		return prevMarker, DirectionAsc
	}
	if nextMarker != "" {
		return nextMarker, DirectionDesc
	}
	return "", DirectionDesc
}

// NewRequest builds a Request from raw query values. pageSize may be empty or invalid,
// in which case fallback is used.
func NewRequest(prevMarker, nextMarker, pageSize string, fallback int) Request {
	marker, dir := ResolveMarker(prevMarker, nextMarker)
	size, err := strconv.Atoi(strings.TrimSpace(pageSize))
	if err != nil || size < 1 {
		size = fallback
	}
	req := Request{
		Marker:    marker,
		Direction: dir,
		PageSize:  size,
	}
	req.Adjust()
	return req
}

// Adjust normalizes the request: unknown directions become desc and the page size is
// clamped to [1, MaxPageSize], defaulting to DefaultPageSize.
func (r *Request) Adjust() {
	if r.Direction != DirectionAsc {
		r.Direction = DirectionDesc
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	} else if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
}

// Sort returns the sort spec sent to the backend, e.g. "created_at:desc".
func (r Request) Sort() string {
	return SortKey + ":" + string(r.Direction)
}

// Fetch lists one page overshot by one record and uses the overshoot to decide whether
// further pages exist in either direction. Items never exceed the page size.
//
// On failure it returns an empty page with both flags false and an error wrapping
// ErrRetrievalFailed. It never retries.
func Fetch[T any](ctx context.Context, list ListFunc[T], req Request) (Page[T], error) {
	req.Adjust()

	items, err := list(ctx, ListParams{
		Limit:  req.PageSize + 1,
		Marker: req.Marker,
		Sort:   req.Sort(),
	})
	if err != nil {
		return Page[T]{Items: []T{}, Direction: req.Direction}, fmt.Errorf("%w: %w", ErrRetrievalFailed, err)
	}

	page := Page[T]{Direction: req.Direction}
	hasMarker := req.Marker != ""

	switch {
	case len(items) > req.PageSize:
		items = items[:req.PageSize]
		page.HasMore = true
		page.HasPrev = hasMarker
	case req.Direction == DirectionAsc && hasMarker:
		// first page reached by paging back
		page.HasMore = true
	case hasMarker:
		// last page reached by paging forward
		page.HasPrev = true
	}

	if items == nil {
		items = []T{}
	}
	page.Items = items
	return page, nil
}

// Ordered returns the items newest first. Pages fetched ascending are reversed into a copy.
func (p Page[T]) Ordered() []T {
	if p.Direction != DirectionAsc {
		return p.Items
	}
	out := make([]T, len(p.Items))
	for i, item := range p.Items {
		out[len(p.Items)-1-i] = item
	}
	return out
}

// NextMarker is the id of the last displayed item when a next page exists.
func (p Page[T]) NextMarker(id func(T) string) string {
	items := p.Ordered()
	if !p.HasMore || len(items) == 0 {
		return ""
	}
	return id(items[len(items)-1])
}

// PrevMarker is the id of the first displayed item when a previous page exists.
func (p Page[T]) PrevMarker(id func(T) string) string {
	items := p.Ordered()
	if !p.HasPrev || len(items) == 0 {
		return ""
	}
	return id(items[0])
}

// Map converts the items of a page, keeping its flags.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := Page[R]{
		Items:     make([]R, len(p.Items)),
		HasMore:   p.HasMore,
		HasPrev:   p.HasPrev,
		Direction: p.Direction,
	}
	for i, item := range p.Items {
		out.Items[i] = fn(item)
	}
	return out
}
