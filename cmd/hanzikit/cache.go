package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the persistent dictionary caches",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the state of both cache envelopes",
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

			for _, status := range application.store.Status(cmd.Context()) {
				if !status.Present {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: absent\n", status.Key)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: version=%s written=%s fresh=%t\n",
					status.Key, status.Version, status.Timestamp.Format("2006-01-02 15:04:05"), status.Fresh)
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove both cache envelopes",
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

			if err := application.store.ClearCaches(cmd.Context()); err != nil {
				return fmt.Errorf("store.ClearCaches > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "caches cleared")
			return nil
		},
	})

	return &rootCommand
}
