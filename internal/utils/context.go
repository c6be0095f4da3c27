// Package utils provides general-purpose helpers used across the
// application: type-safe context keys, HTTP response writing, and UUID
// generation.
package utils

import (
	"context"

	"github.com/associo/tallysync/models"
)

// contextKey is a private type for context keys. A dedicated type instead
// of a plain string prevents collisions with other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// DeviceSessionCtxKey is the key under which the auth middleware stores the
// resolved device session in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.DeviceSessionCtxKey, session)
var DeviceSessionCtxKey = contextKey("deviceSession")

// GetDeviceSessionFromContext retrieves the device session from the
// context.
//
// Returns the session and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetDeviceSessionFromContext(ctx context.Context) (models.DeviceSession, bool) {
	session, ok := ctx.Value(DeviceSessionCtxKey).(models.DeviceSession)
	return session, ok
}
