package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mekvam/logdeck/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    ClientConfig
		wantErr bool
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "server: http://localhost:1500\narchiveDir: /tmp/archives\ntimeout: 10s\n",
			want:    ClientConfig{Server: "http://localhost:1500", ArchiveDir: "/tmp/archives", Timeout: "10s"},
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"server": "https://logs.example.com"}`,
			want:    ClientConfig{Server: "https://logs.example.com"},
		},
		{
			name:    "toml",
			file:    "config.toml",
			content: "server = \"http://localhost:9000\"\n",
			want:    ClientConfig{Server: "http://localhost:9000"},
		},
		{
			name:    "unsupported extension",
			file:    "config.ini",
			content: "server=http://localhost:1500",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			got, err := LoadClientConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLoadClientConfigMissingFile(t *testing.T) {
	got, err := LoadClientConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveServerURL(t *testing.T) {
	cc := &ClientConfig{Server: "http://from-config:1500"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(constants.EnvVarServer, "http://from-env:1500")
		got, err := ResolveServerURL("http://from-flag:1500", cc)
		require.NoError(t, err)
		assert.Equal(t, "http://from-flag:1500", got)
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv(constants.EnvVarServer, "http://from-env:1500")
		got, err := ResolveServerURL("", cc)
		require.NoError(t, err)
		assert.Equal(t, "http://from-env:1500", got)
	})

	t.Run("config beats default", func(t *testing.T) {
		got, err := ResolveServerURL("", cc)
		require.NoError(t, err)
		assert.Equal(t, "http://from-config:1500", got)
	})

	t.Run("default", func(t *testing.T) {
		got, err := ResolveServerURL("", nil)
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultServerURL, got)
	})
}

func TestRequestTimeout(t *testing.T) {
	assert.Equal(t, DefaultRequestTimeout, (*ClientConfig)(nil).RequestTimeout())
	assert.Equal(t, DefaultRequestTimeout, (&ClientConfig{}).RequestTimeout())
	assert.Equal(t, DefaultRequestTimeout, (&ClientConfig{Timeout: "bogus"}).RequestTimeout())
	assert.Equal(t, 5*time.Second, (&ClientConfig{Timeout: "5s"}).RequestTimeout())
}
