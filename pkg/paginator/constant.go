package paginator

import "math"

const (
	// DefaultPage is the default page number when invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when none is provided.
	DefaultLimit = 10
	// MinLimit is the smallest page size a caller can ask for.
	MinLimit = 1
	// MaxLimit is the maximum number of items per page to prevent excessive queries.
	MaxLimit = 100
	// MaxPage keeps (MaxPage-1)*MaxLimit within int.
	MaxPage = math.MaxInt / MaxLimit
)
