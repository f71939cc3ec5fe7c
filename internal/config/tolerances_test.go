package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/osmroutegen/internal/config"
)

func TestDefault(t *testing.T) {
	t1 := config.Default()
	assert.Equal(t, 1e-7, t1.GeneralMappingUncertainty)
	assert.Equal(t, 2e-6, t1.PointToPoint)
	assert.Equal(t, 0.25, t1.RatioBarrierInBarrier)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	got, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoad_OverridesSubsetOfFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tolerances.yaml")
	require.NoError(t, os.WriteFile(path, []byte("point_to_point: 5e-5\n"), 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.PointToPoint = 5e-5
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
