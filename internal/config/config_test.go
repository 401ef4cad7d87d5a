package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triangle-lang/trianglec/internal/config"
)

func TestLoadReturnsDefaultsWhenFileIsMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadMergesOverridesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.yaml")
	contents := "object_file_ext: .obj\ncache_enabled: true\ncache_path: custom.db\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ".obj", cfg.ObjectFileExt)
	require.True(t, cfg.CacheEnabled)
	require.Equal(t, "custom.db", cfg.CachePath)
	require.True(t, cfg.ShouldEmitHelperBlock())
}
