package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanzikit/hanzikit/internal/speech"
)

func newSpeakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text>",
		Short: "Send text to the configured speech service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var speaker speech.Speaker = speech.LogSpeaker{}
			if err := speaker.Speak(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("speaker.Speak > %w", err)
			}
			return nil
		},
	}
}
