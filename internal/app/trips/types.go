package trips

// Optional is a tri-state field used to distinguish:
// - unspecified (omitted)
// - specified as null
// - specified with a value
type Optional[T any] struct {
	specified bool
	isNull    bool
	value     T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{specified: true, isNull: true} }
func Some[T any](v T) Optional[T]     { return Optional[T]{specified: true, value: v} }

func (o Optional[T]) IsSpecified() bool { return o.specified }
func (o Optional[T]) IsNull() bool      { return o.specified && o.isNull }
func (o Optional[T]) Value() T          { return o.value }

// CreateTripInput carries the new-trip form fields. All are required; a
// trip record is never stored partially filled.
type CreateTripInput struct {
	OwnerName   string
	Description string
	Date        string
	Location    string
	ImageRef    string
}

// UpdateTripInput is a merge patch: unspecified fields keep their stored
// values. OwnerName is not patchable.
type UpdateTripInput struct {
	Description Optional[string] // cannot be null or empty
	Date        Optional[string] // cannot be null
	Location    Optional[string] // cannot be null or empty
	ImageRef    Optional[string] // cannot be null
}
