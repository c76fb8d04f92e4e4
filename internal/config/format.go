package config

import (
	"fmt"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NormalizeFormat canonicalises an output format name. Empty input selects
// text; "yml" is accepted as an alias for yaml.
func NormalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf(
			"invalid output format %q (expected %s|%s|%s)",
			raw,
			FormatText,
			FormatJSON,
			FormatYAML,
		)
	}
}
