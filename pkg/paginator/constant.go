package paginator

const (
	// DefaultPageSize is the number of items per page when none is requested.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a client can ask for.
	MaxPageSize = 1000

	// SortKey is the field every paged listing is ordered by.
	SortKey = "created_at"

	// MarkerParam and PrevMarkerParam are the query parameters carrying the cursors.
	MarkerParam     = "marker"
	PrevMarkerParam = "prev_marker"
	// PageSizeParam is the query parameter overriding the page size.
	PageSizeParam = "page_size"
)
