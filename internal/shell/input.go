package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// Input reads lines on a background goroutine so a blocked read never
// delays cancellation.
type Input struct {
	reader *bufio.Reader
	lines  chan inputResult
	done   chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewInput creates an input source on r
func NewInput(r io.Reader) *Input {
	return &Input{
		reader: bufio.NewReader(r),
		lines:  make(chan inputResult),
		done:   make(chan struct{}),
	}
}

func (in *Input) pump() {
	defer close(in.lines)
	for {
		text, err := in.reader.ReadString('\n')

		// a final line without newline still counts
		if text != "" {
			if !in.send(inputResult{text: text}) {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				in.send(inputResult{err: err})
			}
			return
		}
	}
}

func (in *Input) send(res inputResult) bool {
	select {
	case in.lines <- res:
		return true
	case <-in.done:
		return false
	}
}

// Next returns the next line without its line ending. It returns io.EOF
// once the source is drained and ctx.Err() when ctx ends first.
func (in *Input) Next(ctx context.Context) (string, error) {
	in.startOnce.Do(func() { go in.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimRight(res.text, "\r\n"), nil
	}
}

// Close releases the pump goroutine
func (in *Input) Close() {
	in.stopOnce.Do(func() { close(in.done) })
}
