package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("ECOBUDGET_TEST_DIR", "/tmp/budget")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path untouched", input: "/var/data/app.db", expected: "/var/data/app.db"},
		{name: "tilde slash", input: "~/data/app.db", expected: filepath.Join(home, "data/app.db")},
		{name: "bare tilde", input: "~", expected: home},
		{name: "env var", input: "$ECOBUDGET_TEST_DIR/app.db", expected: "/tmp/budget/app.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.True(t, strings.HasSuffix(path, filepath.Join("ecobudget", "ecobudget.db")))
	assert.False(t, strings.HasPrefix(path, "~"))
}
