package accounts

// SignUpInput carries the signup form fields. Name and Email are trimmed and
// Email lowercased before use; Password is taken verbatim.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// LogInInput carries the login form fields.
type LogInInput struct {
	Email    string
	Password string
}
