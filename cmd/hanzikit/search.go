package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzikit/hanzikit/internal/cli"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <pinyin or character>",
		Short: "Search characters by pinyin or literal hanzi",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig > %w", err)
			}
			application, err := newApp(cfg)
			if err != nil {
				return fmt.Errorf("newApp > %w", err)
			}

			results := application.engine.Search(cmd.Context(), args[0])
			cli.RenderResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}
