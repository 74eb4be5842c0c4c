package iocsim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareJaccard(t *testing.T) {
	opts := &Options{
		Indicators: []string{"example.com", "example.net", "totallydifferent.org"},
		Metric:     "jaccard",
		Threshold:  0.8,
	}
	c, err := New(opts)
	require.Nil(t, err)
	matches, err := c.Compare()
	require.Nil(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, Match{
		IOC1:           "example.com",
		IOC2:           "example.net",
		NormalizedIOC1: "example",
		NormalizedIOC2: "example",
		Similarity:     1.0,
		Metric:         "jaccard",
	}, matches[0])
}

func TestCompareLevenshteinThreshold(t *testing.T) {
	opts := &Options{
		Indicators: []string{"abc", "abd"},
		Metric:     "levenshtein",
		Threshold:  0.8,
	}
	// distance 1 over max length 3 gives ~0.667, below 0.8
	c, err := New(opts)
	require.Nil(t, err)
	matches, err := c.Compare()
	require.Nil(t, err)
	require.Empty(t, matches)

	// same pair passes an inclusive threshold of 0.6
	opts.Threshold = 0.6
	c, err = New(opts)
	require.Nil(t, err)
	matches, err = c.Compare()
	require.Nil(t, err)
	require.Len(t, matches, 1)
	require.InDelta(t, 2.0/3.0, matches[0].Similarity, 1e-9)
}

func TestCompareAllPairs(t *testing.T) {
	opts := &Options{
		Indicators: []string{"aaa", "bbb", "ccc", "ddd"},
		Metric:     "jaccard",
		Threshold:  0.0,
	}
	c, err := New(opts)
	require.Nil(t, err)
	matches, err := c.Compare()
	require.Nil(t, err)
	// with threshold 0.0 every distinct pair is reported: n*(n-1)/2
	require.Len(t, matches, 6)

	// source order, no self pairs, no (j,i) duplicates
	index := map[string]int{}
	for i, v := range opts.Indicators {
		index[v] = i
	}
	seen := map[[2]int]bool{}
	prev := [2]int{-1, -1}
	for _, m := range matches {
		i, j := index[m.IOC1], index[m.IOC2]
		require.Less(t, i, j)
		require.False(t, seen[[2]int{i, j}])
		seen[[2]int{i, j}] = true
		require.True(t, i > prev[0] || (i == prev[0] && j > prev[1]), "matches out of source order")
		prev = [2]int{i, j}
	}
}

func TestCompareInvalidMetric(t *testing.T) {
	opts := &Options{
		Indicators: []string{"a.com", "b.com"},
		Metric:     "cosine",
		Threshold:  0.5,
	}
	c, err := New(opts)
	require.NotNil(t, err)
	require.Nil(t, c)
	require.Contains(t, err.Error(), "invalid similarity metric")
}

func TestCompareThresholdOutOfRange(t *testing.T) {
	for _, threshold := range []float64{1.01, -0.1, 2.0} {
		opts := &Options{
			Indicators: []string{"a.com", "b.com"},
			Metric:     "jaccard",
			Threshold:  threshold,
		}
		c, err := New(opts)
		require.NotNil(t, err, "threshold %v must be rejected, not clamped", threshold)
		require.Nil(t, c)
	}
}

func TestCompareNoInput(t *testing.T) {
	_, err := New(&Options{Metric: "jaccard", Threshold: 0.8})
	require.NotNil(t, err)
}

func TestCompareDedupe(t *testing.T) {
	opts := &Options{
		Indicators: []string{"a.com", "a.com", "b.com"},
		Metric:     "jaccard",
		Threshold:  0.0,
		Dedupe:     true,
	}
	c, err := New(opts)
	require.Nil(t, err)
	require.EqualValues(t, 1, c.EstimateCount())
}

func TestEstimateCount(t *testing.T) {
	opts := &Options{
		Indicators: []string{"a", "b", "c", "d", "e"},
		Metric:     "levenshtein",
		Threshold:  0.8,
	}
	c, err := New(opts)
	require.Nil(t, err)
	require.EqualValues(t, 10, c.EstimateCount())
}

func TestCompareWithWriter(t *testing.T) {
	opts := &Options{
		Indicators: []string{"example.com", "example.net"},
		Metric:     "jaccard",
		Threshold:  0.8,
	}
	c, err := New(opts)
	require.Nil(t, err)

	err = c.CompareWithWriter(nil, "")
	require.NotNil(t, err)

	var buff bytes.Buffer
	err = c.CompareWithWriter(&buff, "{{ioc1}}|{{ioc2}}|{{score}}")
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, "example.com|example.net|1.0000", lines[0])
}
