package domain

// Trip is a journal entry owned by a user.
//
// Ownership is denormalized: OwnerName is the account's Name captured at
// login time, and per-user views filter on exact string equality. There is
// no foreign key; a renamed account silently orphans its trips. This mirrors
// the persisted data and must not be "fixed" without a data migration.
type Trip struct {
	OwnerName   string
	Description string
	// Date is an ISO-8601 timestamp string as written by clients.
	// The store treats it as opaque text.
	Date     string
	Location string
	// ImageRef is an opaque reference to a client-side image resource.
	ImageRef string
}
