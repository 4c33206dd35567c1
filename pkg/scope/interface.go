package scope

// Manager verifies and issues bearer tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New returns a Manager that signs with HS256 and the given secret.
func New(secretKey string) Manager {
	return &implManager{secretKey: secretKey}
}
