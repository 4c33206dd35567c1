package scope

import (
	"fmt"
	"time"

	"insight-srv/internal/model"

	"github.com/golang-jwt/jwt"
)

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// NewPayload builds the claims of a token that carries a scope for ttl,
// used to hand a caller's scope to a background job.
func NewPayload(sc model.Scope, ttl time.Duration) Payload {
	now := time.Now()
	return Payload{
		StandardClaims: jwt.StandardClaims{
			Subject:   sc.UserID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		UserID:   sc.UserID,
		Username: sc.Username,
		Role:     sc.Role,
	}
}

func (m implManager) Verify(token string) (Payload, error) {
	var payload Payload
	t, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return Payload{}, err
	}
	if !t.Valid {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}

func (m implManager) CreateToken(payload Payload) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(m.secretKey))
}
