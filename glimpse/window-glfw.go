//go:build !android && !ios

package glimpse

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/glbridge/glm"
	"github.com/oliverbestmann/glbridge/pulse"
)

func init() {
	// glfw must be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	display *glfwDisplay
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	w := &glfwWindow{
		display: &glfwDisplay{opts: opts},
	}

	return w, nil
}

func (g *glfwWindow) Terminate() {
	glfw.Terminate()
}

func (g *glfwWindow) Run(listeners Listeners) error {
	if err := listeners.Surface.SurfaceCreated(g.display); err != nil {
		return fmt.Errorf("create surface: %w", err)
	}

	defer listeners.Surface.SurfaceDestroyed()

	win := g.display.win
	if win == nil {
		return errors.New("surface created without a context")
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	configureInput(win, listeners.Pointer)

	win.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		listeners.Surface.SurfaceResized(uint32(width), uint32(height))
	})

	// glfw does not report the initial size
	width, height := win.GetFramebufferSize()
	listeners.Surface.SurfaceResized(uint32(width), uint32(height))

	for !win.ShouldClose() {
		glfw.PollEvents()
		listeners.Surface.FrameTick()
		win.SwapBuffers()
	}

	return nil
}

// glfwDisplay creates one window per context. The window is the
// context handle handed out to the surface host.
type glfwDisplay struct {
	opts WindowOptions
	win  *glfw.Window
}

func (d *glfwDisplay) Configs() ([]pulse.PlatformConfig, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, errors.New("no primary monitor")
	}

	mode := monitor.GetVideoMode()

	colors := []pulse.BitDepths{
		{Red: mode.RedBits, Green: mode.GreenBits, Blue: mode.BlueBits},
		{Red: mode.RedBits, Green: mode.GreenBits, Blue: mode.BlueBits, Alpha: 8},
		{Red: 5, Green: 6, Blue: 5},
	}

	var configs []pulse.PlatformConfig
	for _, color := range colors {
		for _, ds := range [][2]int{{24, 8}, {16, 0}} {
			bits := color
			bits.Depth = ds[0]
			bits.Stencil = ds[1]

			configs = append(configs, pulse.StaticConfig{BitDepths: bits})
		}
	}

	return configs, nil
}

func (d *glfwDisplay) CreateContext(config pulse.PlatformConfig, attribs []int32) (pulse.ContextHandle, error) {
	if d.win != nil {
		return nil, errors.New("glfw display supports a single context")
	}

	version, ok := pulse.ClientVersion(attribs)
	if !ok {
		version = 2
	}

	bits := pulse.QueryBitDepths(config)

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, version)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.RedBits, bits.Red)
	glfw.WindowHint(glfw.GreenBits, bits.Green)
	glfw.WindowHint(glfw.BlueBits, bits.Blue)
	glfw.WindowHint(glfw.AlphaBits, bits.Alpha)
	glfw.WindowHint(glfw.DepthBits, bits.Depth)
	glfw.WindowHint(glfw.StencilBits, bits.Stencil)

	win, err := glfw.CreateWindow(d.opts.Width, d.opts.Height, d.opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	slog.Info(
		"Created window",
		slog.String("config", bits.String()),
		slog.Int("apiVersion", version),
	)

	d.win = win

	return win, nil
}

func (d *glfwDisplay) DestroyContext(handle pulse.ContextHandle) error {
	win, ok := handle.(*glfw.Window)
	if !ok {
		return fmt.Errorf("unexpected context handle %T", handle)
	}

	win.Destroy()

	if win == d.win {
		d.win = nil
	}

	return nil
}

func configureInput(window *glfw.Window, pointer PointerListener) {
	// the primary mouse button acts as the single touch pointer
	var pressed bool

	window.SetMouseButtonCallback(func(win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if btn != glfw.MouseButton1 {
			return
		}

		x, y := cursorPosition(win).XY()

		switch action {
		case glfw.Press:
			pressed = true
			logPointer(pointer.PointerDown(x, y, timestampMillis()))

		case glfw.Release:
			if !pressed {
				return
			}

			pressed = false
			logPointer(pointer.PointerUp(x, y))
		}
	})

	window.SetCursorPosCallback(func(win *glfw.Window, xpos float64, ypos float64) {
		if !pressed {
			return
		}

		// moves arrive once per cursor event and are not logged
		x, y := framebufferPosition(win, xpos, ypos).XY()
		pointer.PointerMove(x, y)
	})

	window.SetFocusCallback(func(win *glfw.Window, focused bool) {
		if focused || !pressed {
			return
		}

		pressed = false

		x, y := cursorPosition(win).XY()
		logPointer(pointer.PointerCancel(x, y))
	})
}

func cursorPosition(win *glfw.Window) glm.Vec2f {
	xpos, ypos := win.GetCursorPos()
	return framebufferPosition(win, xpos, ypos)
}

// framebufferPosition converts screen coordinates to pixels.
func framebufferPosition(win *glfw.Window, xpos, ypos float64) glm.Vec2f {
	pos := glm.Vec2Of[float32](xpos, ypos)

	width, height := win.GetSize()
	if width == 0 || height == 0 {
		return pos
	}

	fbWidth, fbHeight := win.GetFramebufferSize()

	scale := glm.Vec2Of[float32](fbWidth, fbHeight).Div(glm.Vec2Of[float32](width, height))
	return pos.Mul(scale)
}

func timestampMillis() uint64 {
	return uint64(glfw.GetTime() * 1000)
}
