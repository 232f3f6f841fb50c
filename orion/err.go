package orion

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrNoRenderer = errors.New("no renderer")

// Handle logs and panics if err is not nil.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		slog.Error(text, slog.String("err", err.Error()))
		panic(text + ": " + err.Error())
	}
}
