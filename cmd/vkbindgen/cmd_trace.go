package main

import (
	"github.com/spf13/cobra"

	"github.com/vkbind/vkbind-go/cmd/vkbindgen/commands"
)

func newTraceCmd() *cobra.Command {
	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect generation trace files",
	}
	traceCmd.AddCommand(newTraceViewCmd())
	traceCmd.AddCommand(newTraceStatsCmd())
	traceCmd.AddCommand(newTraceExportCmd())
	return traceCmd
}

func newTraceViewCmd() *cobra.Command {
	var stage, category, name string

	cmd := &cobra.Command{
		Use:   "view <file.vtrace>",
		Short: "Print trace events in human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter commands.ViewFilter
			if stage != "" {
				s, err := commands.ParseStageFlag(stage)
				if err != nil {
					return err
				}
				filter.Stage = &s
			}
			if category != "" {
				c, err := commands.ParseCategoryFlag(category)
				if err != nil {
					return err
				}
				filter.Category = &c
			}
			filter.Name = name
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "filter by stage (index, features, extensions, definitions, enums, constants, emit)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category (run, unit, skip, drop, error)")
	cmd.Flags().StringVar(&name, "name", "", "filter by unit, skip or dropped command name")
	return cmd
}

func newTraceStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.vtrace>",
		Short: "Print per-stage and per-category counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStatsCommand(args[0], cmd.OutOrStdout())
		},
	}
}

func newTraceExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <file.vtrace>",
		Short: "Export trace events as JSON lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "output format (jsonl, csv)")
	return cmd
}
