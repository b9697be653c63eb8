/*
Copyright © 2025 Persefoni
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEval(t *testing.T, args ...string) error {
	t.Helper()
	argv := append([]string{"calc", "eval"}, args...)
	return New().Run(context.Background(), argv)
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		a        string
		b        string
		expected float64
	}{
		{
			name:     "add",
			op:       "add",
			a:        "10",
			b:        "5",
			expected: 15,
		},
		{
			name:     "subtract negative result",
			op:       "subtract",
			a:        "5",
			b:        "10",
			expected: -5,
		},
		{
			name:     "multiply signed operands",
			op:       "multiply",
			a:        "-3",
			b:        "4",
			expected: -12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "result.json")

			err := runEval(t, "--op", tt.op, "-a", tt.a, "-b", tt.b, "--output", out)
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)

			var res evalResult
			require.NoError(t, json.Unmarshal(data, &res))
			assert.Equal(t, tt.op, res.Operation)
			assert.Equal(t, tt.expected, res.Result)
		})
	}
}

func TestEvalCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "unsupported operation",
			args:     []string{"--op", "divide", "-a", "1", "-b", "2"},
			contains: "unsupported operation",
		},
		{
			name:     "non numeric operand",
			args:     []string{"--op", "add", "-a", "one", "-b", "2"},
			contains: "invalid operand a",
		},
		{
			name:     "nan operand rejected",
			args:     []string{"--op", "add", "-a", "NaN", "-b", "2"},
			contains: "NaN and Infinity not allowed",
		},
		{
			name:     "infinite operand rejected",
			args:     []string{"--op", "multiply", "-a", "1", "-b", "+Inf"},
			contains: "NaN and Infinity not allowed",
		},
		{
			name:     "unknown format",
			args:     []string{"--op", "add", "-a", "1", "-b", "2", "--format", "xml"},
			contains: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runEval(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
