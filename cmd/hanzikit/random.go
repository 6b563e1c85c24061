package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzikit/hanzikit/internal/cli"
)

func newRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random selection of characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig > %w", err)
			}
			application, err := newApp(cfg)
			if err != nil {
				return fmt.Errorf("newApp > %w", err)
			}

			cli.RenderResults(cmd.OutOrStdout(), application.engine.RandomResults(cmd.Context()))
			return nil
		},
	}
}
