/*
Copyright © 2025 Persefoni
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
	"github.com/blakeblackwell-persefoni/calcd/pkg/serializer"
)

// evalResult is the CLI output envelope for a single evaluation.
type evalResult struct {
	Operation string  `json:"operation" yaml:"operation"`
	A         float64 `json:"a" yaml:"a"`
	B         float64 `json:"b" yaml:"b"`
	Result    float64 `json:"result" yaml:"result"`
}

func evalCmd() *cli.Command {
	return &cli.Command{
		Name:                  "eval",
		EnableShellCompletion: true,
		Usage:                 "Evaluate a single arithmetic operation locally",
		Description: fmt.Sprintf(`Evaluate one operation without going through the HTTP server.

Operands follow the same validation as the API: NaN and Infinity are
rejected. Supported operations: %s.

# Examples

  calc eval --op add -a 10 -b 5
  calc eval --op multiply -a -3 -b 4 --format yaml
  calc eval --op subtract -a 5 -b 10 --output result.json`,
			calculator.SupportedOperations()),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "op",
				Usage: fmt.Sprintf("Operation to evaluate (supported values: %s)",
					calculator.SupportedOperations()),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "a",
				Usage:    "First operand",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "b",
				Usage:    "Second operand",
				Required: true,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			op := calculator.Operation(cmd.String("op"))
			if !op.IsValid() {
				return fmt.Errorf("unsupported operation: %q (supported: %s)",
					op, calculator.SupportedOperations())
			}

			a, err := strconv.ParseFloat(cmd.String("a"), 64)
			if err != nil {
				return fmt.Errorf("invalid operand a: %w", err)
			}
			b, err := strconv.ParseFloat(cmd.String("b"), 64)
			if err != nil {
				return fmt.Errorf("invalid operand b: %w", err)
			}

			result, err := calculator.NewEngine().Apply(op, a, b)
			if err != nil {
				return err
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()

			return writer.Serialize(ctx, evalResult{
				Operation: op.String(),
				A:         a,
				B:         b,
				Result:    result,
			})
		},
	}
}
