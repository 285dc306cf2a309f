package ports

// TokenService issues and verifies the stateless signed bearer tokens that
// stand in for sessions. Tokens bind a subject email and expire on their own;
// there is no server-side revocation.
type TokenService interface {
	// Issue returns a signed token whose subject is email.
	Issue(email string) (string, error)
	// Verify validates signature and expiry and returns the subject email.
	// Fails with domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Verify(token string) (string, error)
}
