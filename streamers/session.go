package streamers

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Executor runs one command line and returns its output
type Executor interface {
	ExecuteCommand(ctx context.Context, line string) string
}

// Serve reads commands from h until exit, quit, end of input or ctx is done,
// running each through exec. Only read errors other than io.EOF are returned.
func Serve(ctx context.Context, h SessionHandler, exec Executor) error {
	for {
		if ctx.Err() != nil {
			h.Goodbye()
			return nil
		}

		input, err := h.AwaitCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.Goodbye()
				return nil
			}
			h.Error(err)
			return err
		}

		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			h.Goodbye()
			return nil
		}

		h.Working(input)
		h.Result(exec.ExecuteCommand(ctx, input))
	}
}
