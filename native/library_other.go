//go:build !darwin && !linux

package native

func Open(path string, opts LibraryOptions) (*Library, error) {
	return nil, ErrUnsupported
}

func (l *Library) Close() error {
	return nil
}
