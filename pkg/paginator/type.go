package paginator

import (
	"context"
	"errors"
)

// Direction is the sort order requested from the backend.
type Direction string

const (
	// DirectionDesc lists newest first and is used for "next page" navigation.
	DirectionDesc Direction = "desc"
	// DirectionAsc lists oldest first and is used for "previous page" navigation.
	DirectionAsc Direction = "asc"
)

// ErrRetrievalFailed is returned when the listing capability fails.
var ErrRetrievalFailed = errors.New("paginator: retrieval failed")

// Request describes one page to fetch. It is built per incoming list request.
type Request struct {
	Marker    string // "" for the first page in either direction
	Direction Direction
	PageSize  int
}

// ListParams is what a ListFunc receives.
type ListParams struct {
	Limit  int
	Marker string // list strictly after the record with this id
	Sort   string // "<key>:<direction>"
}

// ListFunc lists remote records. The fetcher does not care about the record type.
type ListFunc[T any] func(ctx context.Context, params ListParams) ([]T, error)

// Page is one trimmed page together with its navigation flags.
type Page[T any] struct {
	Items     []T
	HasMore   bool
	HasPrev   bool
	Direction Direction
}
