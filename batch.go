package main

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/shilop/internal/flushio"
	"github.com/jcorbin/shilop/internal/logio"
)

// batch evaluates every line read from in, writing one line of
// space-separated results to out for each. A line whose evaluation fails is
// logged as an error and answered with an empty line.
//
// Lines are read on their own goroutine so that cancelling ctx returns
// promptly even while a read is blocked.
func batch(ctx context.Context, ev *Evaluator, in io.Reader, out io.Writer, log *logio.Logger) error {
	eg, egCtx := errgroup.WithContext(ctx)
	lines := make(chan string)

	eg.Go(func() error {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return sc.Err()
	})

	eg.Go(func() error {
		wf := flushio.NewWriteFlusher(out)
		for n := 1; ; n++ {
			var line string
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			case l, ok := <-lines:
				if !ok {
					return nil
				}
				line = l
			}
			values, err := ev.Evaluate(line)
			if err != nil {
				log.Errorf("line %v: %v", n, err)
			}
			if err := flushio.WriteLine(wf, " ", Render(values)...); err != nil {
				return err
			}
		}
	})

	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
