package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-calc/tally/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the calculation history",
		Long:  `List or clear the calculations recorded by the interactive calculator and 'tally eval'.`,
	}

	cmd.AddCommand(listHistoryCmd())
	cmd.AddCommand(clearHistoryCmd())

	return cmd
}

func listHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("History is disabled."))
				return nil
			}
			defer func() {
				_ = store.Close()
			}()

			entries, err := store.ListEntries(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No calculations yet. Run 'tally' or 'tally eval' first."))
				return nil
			}

			// Create table writer
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer func() {
				_ = w.Flush()
			}()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Expression"),
				cli.HeaderStyle.Render("Result"),
				cli.HeaderStyle.Render("When"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 19))

			for _, entry := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					entry.ID,
					entry.Expression,
					cli.ResultStyle.Render(entry.Result),
					cli.SubtleStyle.Render(entry.CreatedAt.Local().Format("2006-01-02 15:04:05")))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show (0 for all)")

	return cmd
}

func clearHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("History is disabled."))
				return nil
			}
			defer func() {
				_ = store.Close()
			}()

			removed, err := store.ClearEntries(ctx)
			if err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render(fmt.Sprintf("Cleared %d history entries.", removed)))
			return nil
		},
	}
}
