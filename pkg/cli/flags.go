/*
Copyright © 2025 Persefoni
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/blakeblackwell-persefoni/calcd/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatJSON),
	}
)

// parseOutputFormat validates the format flag value.
func parseOutputFormat(value string) (serializer.Format, error) {
	f := serializer.Format(value)
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			value, serializer.SupportedFormats())
	}
	return f, nil
}
