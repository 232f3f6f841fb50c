package glimpse

import "log/slog"

func logPointer(ev NormalizedEvent) {
	slog.Debug(
		"Pointer",
		slog.String("phase", ev.Phase.String()),
		slog.Any("position", ev.Position),
		slog.Uint64("tapCount", uint64(ev.TapCount)),
	)
}
