package iocsim

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Normalizer canonicalizes raw indicators before comparison. Rules are
// compiled once from a NormalizeConfig and applied to every indicator of a
// run, the original value is never modified.
type Normalizer struct {
	prefixRegex *regexp.Regexp
	suffixRegex *regexp.Regexp
	stripETLD   bool
}

// NewNormalizer compiles normalization rules from given config
func NewNormalizer(cfg *NormalizeConfig) (*Normalizer, error) {
	n := &Normalizer{stripETLD: cfg.StripETLD}
	if len(cfg.Prefixes) > 0 {
		re, err := regexp.Compile("^(" + joinLiterals(cfg.Prefixes) + ")")
		if err != nil {
			return nil, err
		}
		n.prefixRegex = re
	}
	if len(cfg.Suffixes) > 0 {
		re, err := regexp.Compile("(" + joinLiterals(cfg.Suffixes) + ")$")
		if err != nil {
			return nil, err
		}
		n.suffixRegex = re
	}
	return n, nil
}

// Normalize lowercases and trims raw indicator and strips a single leading
// prefix (ex: http:// , https:// , www.) and a single trailing suffix
// (ex: .com , .net). Output depends only on input, unmatched indicators
// pass through lowercased/trimmed.
func (n *Normalizer) Normalize(raw string) string {
	ioc := strings.ToLower(strings.TrimSpace(raw))
	if n.prefixRegex != nil {
		// anchored at start, only one occurrence is removed
		ioc = n.prefixRegex.ReplaceAllString(ioc, "")
	}
	if n.stripETLD {
		// strip registered public suffix instead of the fixed suffix list
		// ex: scanme.co.uk -> scanme
		if suffix, _ := publicsuffix.PublicSuffix(ioc); suffix != "" && suffix != ioc {
			ioc = strings.TrimSuffix(ioc, "."+suffix)
		}
		return ioc
	}
	if n.suffixRegex != nil {
		ioc = n.suffixRegex.ReplaceAllString(ioc, "")
	}
	return ioc
}

// Normalize canonicalizes raw indicator using default normalization rules
func Normalize(raw string) string {
	n, err := NewNormalizer(&DefaultConfig)
	if err != nil {
		// default rules are literal lists and always compile
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return n.Normalize(raw)
}

// joins literal values into a regex alternation
func joinLiterals(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, regexp.QuoteMeta(v))
	}
	return strings.Join(quoted, "|")
}
