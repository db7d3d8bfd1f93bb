package domain

// Identity is the authenticated caller as supplied by the external identity
// provider. UserID is the only field the core relies on; the rest exists for
// presentation.
type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
