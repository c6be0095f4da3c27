package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/associo/tallysync/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "tallysync"
)

func mintCredential(t *testing.T, claims deviceClaims, signKey string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	require.NoError(t, err)
	return signed
}

func validClaims() deviceClaims {
	return deviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		DeviceID:        "device-1",
		QuestionnaireID: 1,
		SiteIDs:         []int64{2, 3},
	}
}

func TestTokenService_ParseCredential(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	session, err := svc.ParseCredential(mintCredential(t, validClaims(), testSignKey))
	require.NoError(t, err)

	assert.Equal(t, models.DeviceSession{DeviceID: "device-1", QuestionnaireID: 1, SiteIDs: []int64{2, 3}}, session)
}

func TestTokenService_ParseCredential_Expired(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err := svc.ParseCredential(mintCredential(t, claims, testSignKey))
	assert.ErrorIs(t, err, ErrCredentialExpired)
}

func TestTokenService_ParseCredential_WrongKey(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	_, err := svc.ParseCredential(mintCredential(t, validClaims(), "other-key"))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenService_ParseCredential_WrongIssuer(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	claims := validClaims()
	claims.Issuer = "someone-else"

	_, err := svc.ParseCredential(mintCredential(t, claims, testSignKey))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenService_ParseCredential_MissingScope(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	claims := validClaims()
	claims.DeviceID = ""

	_, err := svc.ParseCredential(mintCredential(t, claims, testSignKey))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenService_ParseCredential_Garbage(t *testing.T) {
	svc := NewTokenService(testSignKey, testIssuer)

	_, err := svc.ParseCredential("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
