package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// format is the --format flag value.
type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

var outputFormat = formatText

var _ pflag.Value = (*format)(nil)

func (f *format) String() string {
	if *f == "" {
		return string(formatText)
	}
	return string(*f)
}

func (f *format) Set(value string) error {
	switch v := format(strings.ToLower(strings.TrimSpace(value))); v {
	case formatText, formatJSON, formatYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("must be one of text, json, yaml")
	}
}

func (f *format) Type() string {
	return "format"
}

// effectiveFormat resolves --json and --format; --json wins.
func effectiveFormat() format {
	if jsonOutput {
		return formatJSON
	}
	if outputFormat == "" {
		return formatText
	}
	return outputFormat
}
