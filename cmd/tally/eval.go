package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-calc/tally/internal/common"
	"github.com/tally-calc/tally/internal/engine"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate an expression and print the result",
		Long: `Evaluate an arithmetic expression without opening the calculator.

Both the keypad glyphs (÷ × −) and their ASCII forms (/ * -) work:

  tally eval "2+3*4"
  tally eval 1 ÷ 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			history, err := openHistory(ctx)
			if err != nil {
				return err
			}

			eng := engine.New(nil)
			if history != nil {
				defer func() {
					_ = history.Close()
				}()
				eng = engine.New(history)
			}

			eng.Append(strings.Join(args, ""))

			result, evalErr := eng.Evaluate(ctx)
			if evalErr != nil {
				var userErr *common.UserError
				if errors.As(evalErr, &userErr) {
					return fmt.Errorf("%s", userErr.UserMessage)
				}
				return evalErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
