package main

import (
	"github.com/spf13/cobra"

	"github.com/vkbind/vkbind-go/cmd/vkbindgen/commands"
)

func newGenerateCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings into an output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunGenerate(commands.GenerateOptions{
				Registry: cfg.registry,
				Output:   cfg.output,
				Package:  cfg.pkg,
				Header:   cfg.header,
				Manifest: cfg.manifest,
				Trace:    cfg.trace,
				Snapshot: cfg.snapshot,
				Verbose:  cfg.verbose,
				Logger:   newLogger(cfg.verbose),
			}, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.registry, "registry", "r", cfg.registry, "registry YAML or .cbor snapshot (env "+envRegistry+")")
	flags.StringVarP(&cfg.output, "output", "o", cfg.output, "output directory (env "+envOutput+")")
	flags.StringVarP(&cfg.pkg, "package", "p", cfg.pkg, "package name of generated files (env "+envPackage+")")
	flags.StringVar(&cfg.header, "header", "", "extra header comment for generated files")
	flags.StringVar(&cfg.manifest, "manifest", "", "write a YAML manifest of the generated module")
	flags.StringVar(&cfg.trace, "trace", cfg.trace, "write a CBOR generation trace (env "+envTrace+")")
	flags.BoolVar(&cfg.snapshot, "snapshot", false, "also write a CBOR snapshot of the registry into the output directory")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug records and trace events to stderr")
	return cmd
}
