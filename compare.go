package iocsim

import (
	"fmt"
	"io"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Comparator Options
type Options struct {
	// list of indicators (domains, urls, hashes etc) to compare pairwise
	Indicators []string
	// Metric used to score every pair (jaccard or levenshtein)
	Metric string
	// Threshold is the inclusive lower bound on similarity score
	// for a pair to be reported
	Threshold float64
	// Dedupe purges duplicate indicators before the sweep
	Dedupe bool
	// NormalizeConfig overrides default normalization rules
	// if empty DefaultConfig is used
	NormalizeConfig *NormalizeConfig
}

// Match is the result of comparing one indicator pair whose score
// passed the threshold. Originals are kept for display, normalized
// forms are what was actually scored.
type Match struct {
	IOC1           string
	IOC2           string
	NormalizedIOC1 string
	NormalizedIOC2 string
	Similarity     float64
	Metric         string
}

// Comparator
type Comparator struct {
	Options    *Options
	score      ScoreFunc
	normalized []string // normalized form cached per indicator index
}

// New creates and returns new comparator instance from options
func New(opts *Options) (*Comparator, error) {
	if len(opts.Indicators) == 0 {
		return nil, fmt.Errorf("no indicators provided to compare")
	}
	// invalid metric is a configuration error, abort before any comparison
	// instead of silently falling back to a default metric
	score, ok := Scorer(Metric(opts.Metric))
	if !ok {
		return nil, errorutil.NewWithTag("iocsim", "invalid similarity metric %q: choose %q or %q", opts.Metric, MetricJaccard, MetricLevenshtein)
	}
	if opts.Threshold < 0.0 || opts.Threshold > 1.0 {
		return nil, errorutil.NewWithTag("iocsim", "threshold must be between 0.0 and 1.0 got %v", opts.Threshold)
	}
	if opts.Dedupe {
		dedupe := sliceutil.Dedupe(opts.Indicators)
		if len(dedupe) != len(opts.Indicators) {
			gologger.Warning().Msgf("%v duplicate indicators found in input. purging them..", len(opts.Indicators)-len(dedupe))
			opts.Indicators = dedupe
		}
	}
	cfg := opts.NormalizeConfig
	if cfg == nil {
		cfg = &DefaultConfig
	}
	normalizer, err := NewNormalizer(cfg)
	if err != nil {
		return nil, errorutil.NewWithTag("iocsim", "failed to compile normalization rules got %v", err)
	}
	c := &Comparator{
		Options: opts,
		score:   score,
	}
	c.normalized = make([]string, len(opts.Indicators))
	for i, ioc := range opts.Indicators {
		c.normalized[i] = normalizer.Normalize(ioc)
	}
	return c, nil
}

// Compare scores all unordered indicator pairs (i,j) with i < j and returns
// matches in source order (increasing i, then increasing j). An empty result
// means no similar indicators, a non-nil error means the run was aborted and
// no partial results are returned.
func (c *Comparator) Compare() ([]Match, error) {
	matches := []Match{}
	for i := 0; i < len(c.normalized); i++ {
		for j := i + 1; j < len(c.normalized); j++ {
			score, ok := c.score(c.normalized[i], c.normalized[j])
			if !ok {
				// failed score computations never pass the threshold,
				// partial similarity data is worse than none for an analyst
				gologger.Verbose().Msgf("%v metric failed on pair (%v, %v), treating as non-match", c.Options.Metric, c.Options.Indicators[i], c.Options.Indicators[j])
				continue
			}
			if score >= c.Options.Threshold {
				matches = append(matches, Match{
					IOC1:           c.Options.Indicators[i],
					IOC2:           c.Options.Indicators[j],
					NormalizedIOC1: c.normalized[i],
					NormalizedIOC2: c.normalized[j],
					Similarity:     score,
					Metric:         c.Options.Metric,
				})
			}
		}
	}
	return matches, nil
}

// CompareWithWriter executes comparator and writes one formatted line per
// match directly to type that implements io.Writer interface. If format is
// empty DefaultOutputFormat is used.
func (c *Comparator) CompareWithWriter(writer io.Writer, format string) error {
	if writer == nil {
		return errorutil.NewWithTag("iocsim", "writer destination cannot be nil")
	}
	if format == "" {
		format = DefaultOutputFormat
	}
	matches, err := c.Compare()
	if err != nil {
		return err
	}
	for _, m := range matches {
		if _, err := writer.Write([]byte(FormatMatch(format, &m) + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// EstimateCount returns number of pair comparisons the sweep will perform
// without scoring anything
func (c *Comparator) EstimateCount() int {
	n := len(c.Options.Indicators)
	return n * (n - 1) / 2
}
