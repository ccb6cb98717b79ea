package main

import (
	"github.com/spboyer/filmtop/internal/projectconfig"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective project configuration",
		Long: `Print the configuration filmtop runs with: the nearest .filmtop.yaml merged
over the built-in defaults. The file is validated against the bundled schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			data, err := projectconfig.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
