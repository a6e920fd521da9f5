package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and verifies the stateless session token carried in the
// `token` cookie. There is no server-side session record; the signed claims
// plus the TTL are the whole session.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
}

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), SessionTTL: sessionTTL}
}

type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Sign produces a session token for the given identity.
func (m *JWTManager) Sign(userID, email string) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies the token and returns its claims. A bad signature, malformed
// structure, or expired timestamp all come back as an error; callers treat any
// error the same as an absent token.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
