package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and verifies the bearer tokens used by every
// authenticated endpoint. Tokens are self-contained HS256 JWTs
// (base64url header.payload.signature); nothing is persisted server-side
// and there is no revocation list. Expiry is embedded in the token and
// enforced on verification.
type TokenService struct {
	secret     []byte
	tokenDurat time.Duration
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		tokenDurat: 24 * time.Hour,
	}
}

// Issue builds a signed token for the given user. The payload carries
// userId, email, iat and exp = iat + 24h.
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning its claims. Any malformed
// input (wrong segment count, undecodable base64 or JSON), a signature
// mismatch or an expired token yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractUserID verifies the token and reads the userId claim. A valid
// signature without a userId claim is still unauthorized.
func (s *TokenService) ExtractUserID(tokenString string) (uint, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return 0, err
	}

	// JSON numbers decode as float64.
	id, ok := claims["userId"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("%w: missing userId claim", ErrInvalidToken)
	}
	return uint(id), nil
}
