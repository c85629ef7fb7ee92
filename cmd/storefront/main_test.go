package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("dotenv does not override the environment", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("APP_ENVIRONMENT=qa\nAPP_SITE_BASE_URL=https://from-file.test\n"), 0o600))

		t.Setenv("APP_SITE_BASE_URL", "https://from-env.test")
		t.Setenv("APP_ENVIRONMENT", "")
		require.NoError(t, os.Unsetenv("APP_ENVIRONMENT"))

		opts := &rootOptions{envFile: envFile}
		require.NoError(t, loadEnv(opts))

		assert.Equal(t, "qa", opts.profile)
		assert.Equal(t, "https://from-env.test", os.Getenv("APP_SITE_BASE_URL"))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		t.Setenv("APP_ENVIRONMENT", "")

		opts := &rootOptions{envFile: filepath.Join(t.TempDir(), "absent.env")}
		require.NoError(t, loadEnv(opts))

		assert.Equal(t, "local", opts.profile)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("APP_ENVIRONMENT", "prod")

		opts := &rootOptions{profile: "dev"}
		require.NoError(t, loadEnv(opts))

		assert.Equal(t, "dev", opts.profile)
	})
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
	assert.NotNil(t, root.RunE)
	assert.NotNil(t, root.PersistentFlags().Lookup("profile"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}
