package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzikit/hanzikit/internal/cli"
	"github.com/hanzikit/hanzikit/internal/speech"
)

func newDetailsCommand() *cobra.Command {
	var showStrokes bool

	command := &cobra.Command{
		Use:   "details <character>",
		Short: "Show readings, meaning, radical, strokes and examples for one character",
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

			resolved := application.resolver.Resolve(cmd.Context(), args[0])
			if resolved == nil {
				return fmt.Errorf("expected exactly one Chinese character, got %q", args[0])
			}
			cli.RenderDetail(cmd.OutOrStdout(), resolved)

			if showStrokes {
				var renderer speech.StrokeRenderer = speech.LogStrokeRenderer{}
				if err := renderer.Render(cmd.Context(), resolved.Character); err != nil {
					return fmt.Errorf("renderer.Render > %w", err)
				}
			}
			return nil
		},
	}
	command.Flags().BoolVar(&showStrokes, "strokes", false, "request the stroke-order animation")
	return command
}
