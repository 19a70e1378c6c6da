package shell

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// LineReader reads one line from an input per ReadLine call. Nothing is
// consumed between calls, so a child process or a full-screen program can
// own the terminal in the meantime. ReadLine must not be called
// concurrently.
type LineReader struct {
	req  chan struct{}
	res  chan lineResult
	once sync.Once
	// waiting is set while a requested line has not been collected.
	waiting bool
}

type lineResult struct {
	line string
	err  error
}

func NewLineReader(in io.Reader) *LineReader {
	r := &LineReader{req: make(chan struct{}), res: make(chan lineResult, 1)}
	br := bufio.NewReader(in)

	go func() {
		var pending error
		for range r.req {
			if pending != nil {
				r.res <- lineResult{err: pending}
				continue
			}
			line, err := br.ReadString('\n')
			if err != nil && line != "" {
				pending, err = err, nil
			}
			r.res <- lineResult{line: line, err: err}
		}
	}()
	return r
}

// ReadLine returns the next line including its newline. A final line without
// one is returned first and its error on the following call. It gives up with
// ctx.Err() when ctx ends; a read already in flight is then collected by the
// next call instead of starting another one.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if !r.waiting {
		select {
		case r.req <- struct{}{}:
			r.waiting = true
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	select {
	case res := <-r.res:
		r.waiting = false
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the reader goroutine once its current read, if any, returns.
func (r *LineReader) Close() {
	r.once.Do(func() { close(r.req) })
}
