// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/associo/tallysync/models"
)

// Credential parsing errors.
var (
	// ErrCredentialExpired is returned when the presented device
	// credential is past its expiry.
	ErrCredentialExpired = errors.New("device credential is expired")

	// ErrInvalidCredential is returned when the presented device
	// credential cannot be verified.
	ErrInvalidCredential = errors.New("device credential is invalid")
)

// deviceClaims is the JWT claim set minted by the pairing workflow. The
// device never inspects it; only the server decodes the credential back
// into a session scope.
type deviceClaims struct {
	jwt.RegisteredClaims
	DeviceID        string  `json:"device_id"`
	QuestionnaireID int64   `json:"questionnaire_id"`
	SiteIDs         []int64 `json:"site_ids,omitempty"`
}

type tokenService struct {
	signKey []byte
	issuer  string
}

// NewTokenService creates the credential parser with the shared signing
// key and the expected issuer.
func NewTokenService(signKey, issuer string) TokenService {
	return &tokenService{signKey: []byte(signKey), issuer: issuer}
}

// ParseCredential verifies the HMAC signature, the expiry, and the issuer
// of the credential and returns the session scope it encodes.
func (s *tokenService) ParseCredential(tokenString string) (models.DeviceSession, error) {
	claims := &deviceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signKey, nil
	}, jwt.WithIssuer(s.issuer))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.DeviceSession{}, ErrCredentialExpired
	case err != nil:
		return models.DeviceSession{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	case !token.Valid:
		return models.DeviceSession{}, ErrInvalidCredential
	case claims.DeviceID == "" || claims.QuestionnaireID == 0:
		return models.DeviceSession{}, ErrInvalidCredential
	}

	return models.DeviceSession{
		DeviceID:        claims.DeviceID,
		QuestionnaireID: claims.QuestionnaireID,
		SiteIDs:         claims.SiteIDs,
	}, nil
}
