package runner

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Indicators         goflags.StringSlice // IOCs to compare pairwise
	Metric             string              // similarity metric name
	Threshold          float64             // inclusive similarity threshold
	Output             string              // csv output file
	OutputFormat       string              // custom row template
	Config             string
	NormalizeConfig    string
	StripETLD          bool
	Dedupe             bool
	Estimate           bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	var threshold string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compare indicator-of-compromise lists pairwise and report similar pairs.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Indicators, "iocs", "i", nil, "indicators to analyze (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.Dedupe, "dedupe", "dd", false, "purge duplicate indicators before comparing"),
	)

	flagSet.CreateGroup("similarity", "Similarity",
		flagSet.StringVarP(&opts.Metric, "metric", "m", "jaccard", "similarity metric to use (jaccard or levenshtein)"),
		flagSet.StringVarP(&threshold, "threshold", "t", "0.8", "similarity threshold (0.0-1.0)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate comparison count without scoring pairs"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to save results (csv format)"),
		flagSet.StringVarP(&opts.OutputFormat, "format", "of", "", "custom row format (ex: '{{ioc1}},{{ioc2}},{{score}}')"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display iocsim version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `iocsim cli config file (default '$HOME/.config/iocsim/config.yaml')`),
		flagSet.StringVarP(&opts.NormalizeConfig, "normalize-config", "nc", "", `normalization rules file (default '$HOME/.config/iocsim/normalize.yaml')`),
		flagSet.BoolVarP(&opts.StripETLD, "strip-etld", "se", false, "strip registered public suffix instead of the fixed suffix list"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update iocsim to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic iocsim update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("iocsim")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("iocsim version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current iocsim version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	value, err := parseThreshold(threshold)
	if err != nil {
		gologger.Fatal().Msgf("Could not parse threshold: %s\n", err)
	}
	opts.Threshold = value

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Indicators = strings.Fields(string(bin))
	}

	if len(opts.Indicators) == 0 {
		gologger.Fatal().Msgf("iocsim: no input found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// parseThreshold validates the threshold before it reaches the core,
// out of range values are rejected instead of clamped
func parseThreshold(value string) (float64, error) {
	threshold, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if threshold < 0.0 || threshold > 1.0 {
		return 0, errorutil.New("threshold must be between 0.0 and 1.0")
	}
	return threshold, nil
}
