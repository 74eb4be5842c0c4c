package iocsim

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNormalizeBin contains the embedded default normalization rules
//
//go:embed normalize.yaml
var DefaultNormalizeBin []byte

// DefaultConfig holds normalization rules used when options do not provide
// any. The cli runner replaces it with the user's on-disk config when present.
var DefaultConfig NormalizeConfig

func init() {
	if err := yaml.Unmarshal(DefaultNormalizeBin, &DefaultConfig); err != nil {
		panic("iocsim: failed to parse embedded normalize.yaml: " + err.Error())
	}
}

// NormalizeConfig holds indicator normalization rules
type NormalizeConfig struct {
	Prefixes  []string `yaml:"prefixes"`
	Suffixes  []string `yaml:"suffixes"`
	StripETLD bool     `yaml:"strip-etld"`
}

// NewConfig reads normalization config from file
func NewConfig(filePath string) (*NormalizeConfig, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg NormalizeConfig
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Generate Sample creates a sample yaml file with default normalization rules
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
