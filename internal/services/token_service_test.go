package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/fumio65/Thrift-Clothing/internal/services"
)

const testSecret = "test_jwt_secret"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := services.NewTokenService(testSecret)

	token, err := svc.Issue(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, float64(42), claims["userId"])

	// exp must be about 24h out from iat.
	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(24*60*60), exp-iat)

	userID, err := svc.ExtractUserID(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_TamperedSignatureFails(t *testing.T) {
	svc := services.NewTokenService(testSecret)

	token, err := svc.Issue(7, "user@example.com")
	assert.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_WrongSecretFails(t *testing.T) {
	token, err := services.NewTokenService("other_secret").Issue(7, "user@example.com")
	assert.NoError(t, err)

	_, err = services.NewTokenService(testSecret).Verify(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_MalformedTokens(t *testing.T) {
	svc := services.NewTokenService(testSecret)

	for _, bad := range []string{
		"",
		"not-a-token",
		"one.two",
		"one.two.three.four",
		"!!!.@@@.###",
	} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, services.ErrInvalidToken, "token %q should not verify", bad)
	}
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	// Sign an already-expired token with the same secret; it must fail
	// verification even though the signature is valid.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 7,
		"email":  "user@example.com",
		"iat":    time.Now().Add(-48 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = services.NewTokenService(testSecret).Verify(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_MissingUserIDClaim(t *testing.T) {
	// Valid signature, but no userId claim: still unauthorized.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = services.NewTokenService(testSecret).ExtractUserID(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
