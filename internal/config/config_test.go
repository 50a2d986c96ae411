package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netcompare/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AIRTABLE_API_KEY", "")
	t.Setenv("AIRTABLE_BASE_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("SURVEY_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.StoreEnabled())
	assert.Empty(t, cfg.Data.SurveyFile)
}

func TestLoadStoreCredentials(t *testing.T) {
	t.Setenv("AIRTABLE_API_KEY", "key123")
	t.Setenv("AIRTABLE_BASE_ID", "appXYZ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StoreEnabled())
	assert.Equal(t, "key123", cfg.Store.APIKey)
	assert.Equal(t, "appXYZ", cfg.Store.BaseID)
}

func TestLoadRejectsHalfSetCredentials(t *testing.T) {
	t.Setenv("AIRTABLE_API_KEY", "key123")
	t.Setenv("AIRTABLE_BASE_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
