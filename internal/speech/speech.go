// Package speech declares the narrow contracts for the pronunciation and
// stroke-order services. Their internals live outside this codebase; the
// engine only ever calls these two methods.
package speech

import (
	"context"
	"log/slog"
)

// Speaker reads text aloud. Speak returns when playback has been handed off.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// StrokeRenderer draws the stroke-order animation for one character.
type StrokeRenderer interface {
	Render(ctx context.Context, character string) error
}

// LogSpeaker is the default Speaker when no audio service is configured: it
// records the request and succeeds.
type LogSpeaker struct{}

var _ Speaker = LogSpeaker{}

// Speak logs the text that would be spoken.
func (LogSpeaker) Speak(_ context.Context, text string) error {
	slog.Info("speak requested", "text", text)
	return nil
}

// LogStrokeRenderer is the default StrokeRenderer when no widget is attached.
type LogStrokeRenderer struct{}

var _ StrokeRenderer = LogStrokeRenderer{}

// Render logs the character that would be animated.
func (LogStrokeRenderer) Render(_ context.Context, character string) error {
	slog.Info("stroke render requested", "character", character)
	return nil
}
