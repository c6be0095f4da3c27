package utils

import (
	"context"
	"testing"

	"github.com/associo/tallysync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeviceSessionFromContext(t *testing.T) {
	session := models.DeviceSession{
		DeviceID:        "tablet-12",
		QuestionnaireID: 4,
		SiteIDs:         []int64{1, 2},
	}
	ctx := context.WithValue(context.Background(), DeviceSessionCtxKey, session)

	got, ok := GetDeviceSessionFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestGetDeviceSessionFromContext_Missing(t *testing.T) {
	_, ok := GetDeviceSessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetDeviceSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceSessionCtxKey, "not-a-session")

	_, ok := GetDeviceSessionFromContext(ctx)
	assert.False(t, ok)
}
