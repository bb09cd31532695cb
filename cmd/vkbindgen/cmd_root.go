package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vkbindgen",
		Short: "Generate Go bindings from a Vulkan API registry",
		Long: "Generate Go bindings from a Vulkan API registry.\n\n" +
			"The registry is read from YAML, or from a CBOR snapshot when the file ends in .cbor.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newTraceCmd())

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd
}
