package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/migrate"
)

func TestVersions_ShippedMigrationsArePaired(t *testing.T) {
	versions, err := migrate.Versions("../../../migrations")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, versions)
}

func TestVersions_MissingDirectory(t *testing.T) {
	_, err := migrate.Versions(t.TempDir() + "/absent")
	assert.Error(t, err)
}
