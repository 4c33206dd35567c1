package scope

import "github.com/golang-jwt/jwt"

// Payload is the verified content of a bearer token.
type Payload struct {
	jwt.StandardClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type implManager struct {
	secretKey string
}
