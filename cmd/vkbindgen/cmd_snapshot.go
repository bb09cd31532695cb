package main

import (
	"github.com/spf13/cobra"

	"github.com/vkbind/vkbind-go/cmd/vkbindgen/commands"
)

func newSnapshotCmd() *cobra.Command {
	registry := envOr(envRegistry, defaultRegistry)
	var out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write a CBOR snapshot of a registry and print its digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunSnapshot(registry, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&registry, "registry", "r", registry, "registry YAML (env "+envRegistry+")")
	cmd.Flags().StringVar(&out, "out", "", "snapshot output path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
