package api

import (
	"testing"

	"github.com/campusmatch/backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresSigningSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewServer(database.Database{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewServer_StartsWithSigningSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	server, err := NewServer(database.Database{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, server.Server)
	assert.Contains(t, server.Addr, ":")
}
