package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/glbridge/glimpse"
	"github.com/oliverbestmann/glbridge/pulse"
)

// surfaceSession negotiates a context for every surface the window
// creates and forwards everything else to the SurfaceHost.
type surfaceSession struct {
	host    *SurfaceHost
	request pulse.ConfigRequest
	factory pulse.ContextFactory

	configs *pulse.ConfigCache
	context *pulse.Context

	frames FrameTimes
}

var _ glimpse.SurfaceLifecycleListener = (*surfaceSession)(nil)

func newSurfaceSession(host *SurfaceHost, request pulse.ConfigRequest, apiVersion int) *surfaceSession {
	return &surfaceSession{
		host:    host,
		request: request,
		factory: pulse.ContextFactory{APIVersion: apiVersion},
	}
}

func (s *surfaceSession) SurfaceCreated(display pulse.Display) error {
	if s.context != nil {
		return errors.New("surface already has a context")
	}

	if s.configs == nil || s.configs.Display() != display {
		s.configs = pulse.NewConfigCache(display)
	}

	config, err := s.configs.Choose(s.request)
	if err != nil {
		return fmt.Errorf("choose config: %w", err)
	}

	ctx, err := s.factory.Create(display, config)
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}

	s.context = ctx

	slog.Info(
		"Surface created",
		slog.String("request", s.request.String()),
		slog.String("config", pulse.QueryBitDepths(config).String()),
		slog.Int("apiVersion", ctx.APIVersion),
	)

	s.host.SurfaceCreated()

	return nil
}

func (s *surfaceSession) SurfaceResized(width, height uint32) {
	slog.Debug(
		"Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	s.host.SurfaceResized(width, height)
}

func (s *surfaceSession) SurfaceDestroyed() {
	s.host.SurfaceDestroyed()

	if s.context == nil {
		return
	}

	if err := s.factory.Destroy(s.context); err != nil {
		slog.Warn("Release context", slog.String("err", err.Error()))
	}

	s.context = nil
}

func (s *surfaceSession) FrameTick() {
	s.host.FrameTick()

	if s.frames.Tick() {
		slog.Debug(
			"Frame times",
			slog.Uint64("frames", s.frames.FrameCount),
			slog.Float64("fps", s.frames.FPS()),
			slog.Duration("max", s.frames.MaxDuration),
		)
	}
}
