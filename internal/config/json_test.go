package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"host": "diskstation.local",
		"port": 5001,
		"username": "backup",
		"password": "hunter2",
		"share_name": "backups",
		"filename": "/var/lib/app/db.sqlite",
		"request_timeout": "45s",
		"insecure_tls": true
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "diskstation.local", cfg.NAS.Host)
	assert.Equal(t, 5001, cfg.NAS.Port)
	assert.Equal(t, "backup", cfg.NAS.Username)
	assert.Equal(t, "hunter2", cfg.NAS.Password)
	assert.Equal(t, "backups", cfg.NAS.ShareName)

	assert.Equal(t, "/var/lib/app/db.sqlite", cfg.Backup.SourcePath)

	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.InsecureTLS)
}

func TestParseJSON_MinimalKeys(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"host": "192.168.1.20",
		"port": 5000,
		"username": "backup",
		"password": "secret",
		"share_name": "homes",
		"filename": "notes.txt"
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Adapter.RequestTimeout, "timeout defaults to none")
	assert.False(t, cfg.Adapter.InsecureTLS)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// Trailing commas show up in hand-edited config files; encoding/json is
// strict about them and the loader surfaces that as a decode error rather
// than guessing.
func TestParseJSON_TrailingComma(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "trailing.json")

	jsonBody := `{
		"host": "diskstation.local",
		"port": 5001,
		"username": "backup",
		"password": "hunter2",
		"share_name": "backups",
		"filename": "notes.txt",
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`5000000000`)))
	assert.Equal(t, 5*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalGarbage(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}
