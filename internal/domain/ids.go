package domain

// IdentityKey is the derived, store-safe representation of a user's email.
// It is the Account Directory's lookup key (see DeriveIdentityKey).
type IdentityKey string

// TripID is a store-assigned opaque identifier for a trip record.
// It has no semantic structure and no ordering guarantees.
type TripID string
