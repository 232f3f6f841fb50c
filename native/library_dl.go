//go:build darwin || linux

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Open loads the shared library at path and binds its entry points.
func Open(path string, opts LibraryOptions) (lib *Library, err error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	defer func() {
		if err != nil {
			_ = purego.Dlclose(handle)
			lib = nil
		}
	}()

	lib = &Library{path: path, handle: handle}

	for _, sym := range lib.symbols() {
		name := opts.Prefix + sym.name

		addr, err := purego.Dlsym(handle, name)
		if err != nil || addr == 0 {
			if sym.required {
				return nil, missingSymbol(name)
			}

			continue
		}

		purego.RegisterFunc(sym.target, addr)
	}

	return lib, nil
}

// Close unloads the library. The entry points must not be used afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	l.handle = 0
	l.Funcs = Funcs{}

	if err := purego.Dlclose(handle); err != nil {
		return fmt.Errorf("close %q: %w", l.path, err)
	}

	return nil
}
