package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEval(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Set("history.disabled", true)
	t.Cleanup(viper.Reset)

	cmd := evalCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "precedence", args: []string{"2+3*4"}, want: "14\n"},
		{name: "keypad glyphs", args: []string{"8÷2"}, want: "4\n"},
		{name: "decimal result", args: []string{"1/4"}, want: "0.25\n"},
		{name: "args joined", args: []string{"1", "+", "2"}, want: "3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runEval(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wantMsg string
		args    []string
	}{
		{name: "division by zero", args: []string{"5/0"}, wantMsg: "Cannot divide by zero!"},
		{name: "trailing operator", args: []string{"5+"}, wantMsg: "Invalid expression! Please check your input."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runEval(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
