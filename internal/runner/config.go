package runner

import (
	"os"
	"path/filepath"

	"github.com/averlab/iocsim"
	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultNormalizeCfg := filepath.Join(getUserHomeDir(), ".config/iocsim/normalize.yaml")
	// create default normalize.yaml config if it does not exist
	if fileutil.FileExists(defaultNormalizeCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultNormalizeCfg); err == nil {
			var cfg iocsim.NormalizeConfig
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				iocsim.DefaultConfig = cfg
				return
			}
		}
	}
	if err := os.WriteFile(defaultNormalizeCfg, iocsim.DefaultNormalizeBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultNormalizeCfg, err)
	}
}
