package jwt

import (
	"insight-srv/pkg/scope"
)

// IManager verifies bearer tokens issued by the platform's auth service.
// It satisfies scope.Manager so the Auth middleware can use it directly.
type IManager interface {
	GenerateToken(userID, email, role string) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
	Verify(token string) (scope.Payload, error)
	CreateToken(payload scope.Payload) (string, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
