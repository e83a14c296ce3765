package domain

// Account is a user record in the Account Directory.
//
// Accounts are created on signup and never updated or deleted. The password
// is stored exactly as supplied: the existing database was written that way
// and authentication compares the stored string verbatim, so hashing here
// would break every persisted record.
type Account struct {
	IdentityKey IdentityKey

	Name     string
	Email    string
	Password string
}
