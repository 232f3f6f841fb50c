package native

// Funcs is a table of entry points. Every field is optional,
// a nil entry point is skipped.
type Funcs struct {
	InitFunc            func(width, height int32, resourcePath string)
	DrawFunc            func()
	ToucheBeganFunc     func(x, y float32, tapCount int32)
	ToucheMovedFunc     func(x, y float32, tapCount int32)
	ToucheEndedFunc     func(x, y float32, tapCount int32)
	ToucheCancelledFunc func(x, y float32, tapCount int32)
	AccelerometerFunc   func(x, y, z float32)
	ExitFunc            func()
}

var _ Renderer = (*Funcs)(nil)
var _ TouchCanceller = (*Funcs)(nil)
var _ Exiter = (*Funcs)(nil)

func (f *Funcs) Init(width, height int32, resourcePath string) {
	if f.InitFunc != nil {
		f.InitFunc(width, height, resourcePath)
	}
}

func (f *Funcs) Draw() {
	if f.DrawFunc != nil {
		f.DrawFunc()
	}
}

func (f *Funcs) ToucheBegan(x, y float32, tapCount int32) {
	if f.ToucheBeganFunc != nil {
		f.ToucheBeganFunc(x, y, tapCount)
	}
}

func (f *Funcs) ToucheMoved(x, y float32, tapCount int32) {
	if f.ToucheMovedFunc != nil {
		f.ToucheMovedFunc(x, y, tapCount)
	}
}

func (f *Funcs) ToucheEnded(x, y float32, tapCount int32) {
	if f.ToucheEndedFunc != nil {
		f.ToucheEndedFunc(x, y, tapCount)
	}
}

func (f *Funcs) ToucheCancelled(x, y float32, tapCount int32) {
	if f.ToucheCancelledFunc != nil {
		f.ToucheCancelledFunc(x, y, tapCount)
	}
}

func (f *Funcs) Accelerometer(x, y, z float32) {
	if f.AccelerometerFunc != nil {
		f.AccelerometerFunc(x, y, z)
	}
}

func (f *Funcs) Exit() {
	if f.ExitFunc != nil {
		f.ExitFunc()
	}
}
