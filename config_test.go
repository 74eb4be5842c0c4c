package iocsim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	require.Equal(t, []string{"http://", "https://", "www."}, DefaultConfig.Prefixes)
	require.Equal(t, []string{".com", ".net", ".org", ".io"}, DefaultConfig.Suffixes)
	require.False(t, DefaultConfig.StripETLD)
}

func TestConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "normalize.yaml")
	require.Nil(t, GenerateSample(path))
	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, &DefaultConfig, cfg)
}
