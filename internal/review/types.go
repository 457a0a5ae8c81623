package review

import "review-srv/internal/model"

const (
	MinRating  = 1
	MaxRating  = 5
	MaxIDBytes = 512
)

// Bulk item error types.
const (
	ErrorTypeValidation          = "ValidationError"
	ErrorTypeConflict            = "Conflict"
	ErrorTypeUpstreamUnavailable = "UpstreamUnavailable"
)

// Event types published after a successful write.
const (
	EventCreated = "review.created"
	EventUpdated = "review.updated"
	EventDeleted = "review.deleted"
)

// CreateInput is a review as submitted by a caller. CreatedAt is ISO-8601.
type CreateInput struct {
	ID          string
	ProductID   string
	ProductName string
	Rating      int
	Title       string
	Text        string
	CreatedAt   string
	// Malformed is set when the item could not be decoded. Such an item
	// fails validation.
	Malformed string
}

// Patch carries the fields a partial update provides. A nil field was not
// provided and is left untouched.
type Patch struct {
	ProductID   *string
	ProductName *string
	Rating      *int
	Title       *string
	Text        *string
	CreatedAt   *string
}

// IsEmpty reports whether no field was provided.
func (p Patch) IsEmpty() bool {
	return p.ProductID == nil && p.ProductName == nil && p.Rating == nil &&
		p.Title == nil && p.Text == nil && p.CreatedAt == nil
}

// TouchesContent reports whether the patch provides title or text.
func (p Patch) TouchesContent() bool {
	return p.Title != nil || p.Text != nil
}

type BulkItemResult struct {
	Index        int
	ID           string
	Success      bool
	ErrorType    string
	ErrorMessage string
}

type BulkOutput struct {
	BatchID   string
	Total     int
	Succeeded int
	Failed    int
	Items     []BulkItemResult
}

type EnsureIndexOutput struct {
	Index   string
	Created bool
}

// Event describes a completed write.
type Event struct {
	Type   string
	Review model.Review
}
