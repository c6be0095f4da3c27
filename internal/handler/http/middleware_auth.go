// Package http implements the HTTP transport layer of the reconciliation
// server. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, tracing, and
// compression concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/internal/utils"
)

// auth is an HTTP middleware that enforces device-credential
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// credential, resolves it via [service.TokenService.ParseCredential], and
// on success stores the resulting device session in the request context
// under [utils.DeviceSessionCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, or when the credential is expired or
// cannot be verified.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		session, err := h.services.Token.ParseCredential(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCredentialExpired):
				log.Err(err).Msg("device credential expired")
				http.Error(w, service.ErrCredentialExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing device credential")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the resolved session in the context so that downstream
		// handlers can retrieve it without re-parsing the credential.
		ctx := context.WithValue(r.Context(), utils.DeviceSessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer credential string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
