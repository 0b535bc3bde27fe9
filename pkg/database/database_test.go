package database

import (
	"motorkeys_backend/internal/config"
	"motorkeys_backend/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBSQLiteMigrates(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "data", "test.db"),
	}

	db, err := InitDB(cfg, "release", true)
	require.NoError(t, err)

	for _, m := range Models {
		assert.True(t, db.Migrator().HasTable(m))
	}

	learner := model.Learner{Name: "Ada"}
	require.NoError(t, db.Create(&learner).Error)
	assert.NotEmpty(t, learner.ID)
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Driver: "oracle"}, "release", false)
	assert.Error(t, err)
}
