package iocsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testcases := []struct {
		raw      string
		expected string
	}{
		{raw: "HTTP://Example.COM", expected: "example"},
		{raw: "  malware.io  ", expected: "malware"},
		{raw: "www.test.org", expected: "test"},
		// only one leading prefix is removed
		{raw: "https://www.example.com", expected: "www.example"},
		// hashes and opaque strings pass through lowercased
		{raw: "DEADBEEFCAFE", expected: "deadbeefcafe"},
		{raw: "example.net", expected: "example"},
		{raw: "", expected: ""},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, Normalize(tc.raw), "normalize(%q)", tc.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	testcases := []string{"HTTP://Example.COM", "www.test.org", "deadbeef", "example.net", "  spaced.io "}
	for _, v := range testcases {
		once := Normalize(v)
		require.Equal(t, once, Normalize(once), "normalize is not idempotent for %q", v)
	}
}

func TestNormalizerCustomConfig(t *testing.T) {
	cfg := &NormalizeConfig{
		Prefixes: []string{"ftp://"},
		Suffixes: []string{".onion"},
	}
	n, err := NewNormalizer(cfg)
	require.Nil(t, err)
	require.Equal(t, "dropzone", n.Normalize("FTP://dropzone.onion"))
	// default rules do not apply with a custom config
	require.Equal(t, "http://example.com", n.Normalize("http://example.com"))
}

func TestNormalizerStripETLD(t *testing.T) {
	cfg := &NormalizeConfig{
		Prefixes:  DefaultConfig.Prefixes,
		StripETLD: true,
	}
	n, err := NewNormalizer(cfg)
	require.Nil(t, err)
	testcases := []struct {
		raw      string
		expected string
	}{
		{raw: "scanme.co.uk", expected: "scanme"},
		{raw: "www.example.co.uk", expected: "example"},
		{raw: "https://example.com", expected: "example"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, n.Normalize(tc.raw), "normalize(%q)", tc.raw)
	}
}
