package main

import (
	"os"

	"github.com/averlab/iocsim"
	"github.com/averlab/iocsim/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	compareOpts := iocsim.Options{
		Indicators: cliOpts.Indicators,
		Metric:     cliOpts.Metric,
		Threshold:  cliOpts.Threshold,
		Dedupe:     cliOpts.Dedupe,
	}

	if cliOpts.NormalizeConfig != "" {
		cfg, err := iocsim.NewConfig(cliOpts.NormalizeConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.NormalizeConfig, err)
		}
		compareOpts.NormalizeConfig = cfg
	}
	if cliOpts.StripETLD {
		if compareOpts.NormalizeConfig == nil {
			cfg := iocsim.DefaultConfig
			compareOpts.NormalizeConfig = &cfg
		}
		compareOpts.NormalizeConfig.StripETLD = true
	}

	c, err := iocsim.New(&compareOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to configure comparator got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated comparisons: %v", c.EstimateCount())
		return
	}

	matches, err := c.Compare()
	if err != nil {
		gologger.Fatal().Msgf("comparison failed got %v", err)
	}

	if len(matches) == 0 {
		// empty result set is a valid result, not an error
		gologger.Print().Msgf("no similar IOCs found above the specified threshold")
		return
	}

	if cliOpts.OutputFormat != "" {
		err = iocsim.WriteFormatted(matches, cliOpts.OutputFormat, os.Stdout)
	} else {
		err = iocsim.WriteTable(matches, os.Stdout)
	}
	if err != nil {
		gologger.Fatal().Msgf("failed to write results got %v", err)
	}

	if cliOpts.Output != "" {
		fs, err := os.OpenFile(cliOpts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", cliOpts.Output, err)
		}
		defer fs.Close()
		if err := iocsim.WriteCSV(matches, fs); err != nil {
			gologger.Error().Msgf("failed to write output to file got %v", err)
			return
		}
		gologger.Info().Msgf("Results saved to %v", cliOpts.Output)
	}
}
