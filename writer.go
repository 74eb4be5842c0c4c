package iocsim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"

	// DefaultOutputFormat used when no custom row format is given
	DefaultOutputFormat = "{{ioc1}} {{ioc2}} {{score}}"
)

// CSVHeader is the fixed header row of exported result sets
var CSVHeader = []string{"IOC1", "IOC2", "Normalized_IOC1", "Normalized_IOC2", "Similarity", "Metric"}

// WriteCSV serializes matches as csv with one row per match in result
// set order
func WriteCSV(matches []Match, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("iocsim", "writer destination cannot be nil")
	}
	w := csv.NewWriter(writer)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, m := range matches {
		row := []string{m.IOC1, m.IOC2, m.NormalizedIOC1, m.NormalizedIOC2, formatScore(m.Similarity), m.Metric}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteTable renders matches as a human readable table
func WriteTable(matches []Match, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("iocsim", "writer destination cannot be nil")
	}
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IOC1\tIOC2\tNORMALIZED_IOC1\tNORMALIZED_IOC2\tSIMILARITY\tMETRIC")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", m.IOC1, m.IOC2, m.NormalizedIOC1, m.NormalizedIOC2, formatScore(m.Similarity), m.Metric)
	}
	return tw.Flush()
}

// WriteFormatted writes one line per match using a custom row template
// ex: "{{ioc1}},{{ioc2}},{{score}}"
func WriteFormatted(matches []Match, format string, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("iocsim", "writer destination cannot be nil")
	}
	if _, err := fasttemplate.NewTemplate(format, ParenthesisOpen, ParenthesisClose); err != nil {
		return errorutil.NewWithTag("iocsim", "invalid output format %q got %v", format, err)
	}
	for _, m := range matches {
		if _, err := writer.Write([]byte(FormatMatch(format, &m) + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// FormatMatch replaces placeholders in template with match fields on the fly.
// Available placeholders: ioc1, ioc2, nioc1, nioc2, score, metric
func FormatMatch(template string, m *Match) string {
	values := map[string]interface{}{
		"ioc1":   m.IOC1,
		"ioc2":   m.IOC2,
		"nioc1":  m.NormalizedIOC1,
		"nioc2":  m.NormalizedIOC2,
		"score":  formatScore(m.Similarity),
		"metric": m.Metric,
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, values)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
