package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/shilop/internal/fileinput"
	"github.com/jcorbin/shilop/internal/logio"
	"github.com/jcorbin/shilop/internal/macro"
)

func main() {
	ctx := context.Background()

	home, _ := os.UserHomeDir()
	var (
		macrosPath  = filepath.Join(home, ".shilop")
		historyPath = filepath.Join(home, ".shilop_history")
		expr        string
		trace       bool
		timeout     time.Duration
	)
	flag.StringVar(&macrosPath, "macros", macrosPath, "macro definition file")
	flag.StringVar(&historyPath, "history", historyPath, "interactive line history file")
	flag.StringVar(&expr, "e", "", "evaluate an expression, print its final stack, and exit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for batch evaluation")
	flag.Parse()
	if expr == "" && flag.NArg() > 0 {
		expr = strings.Join(flag.Args(), " ")
	}

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	table, err := loadMacros(macrosPath, &log)
	if err != nil {
		log.Errorf("cannot load macros: %v", err)
		return
	}

	opts := []Option{WithMacros(table)}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	ev := New(opts...)

	switch {
	case expr != "":
		err = evalOnce(ev, expr, os.Stdout)

	case isTerminal(os.Stdin) && isTerminal(os.Stdout):
		err = repl(ev, historyPath, &log)

	default:
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()
		if timeout != 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		err = batch(ctx, ev, os.Stdin, os.Stdout, &log)
	}
	log.ErrorIf(err)
}

// loadMacros reads and validates the macro file at path; a missing file
// defines no macros. Redefinitions are allowed, the last one wins.
func loadMacros(path string, log *logio.Logger) (*macro.Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return macro.Build(nil)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := macro.ParseDefinitions(f, path)
	if err != nil {
		return nil, err
	}
	entries := make(map[string][]string, len(defs))
	defined := make(map[string]fileinput.Location, len(defs))
	for _, def := range defs {
		if prior, dup := defined[def.Name]; dup {
			log.Printf("WARN", "%v: macro %q redefined, replacing the definition at %v", def.Location, def.Name, prior)
		}
		defined[def.Name] = def.Location
		entries[def.Name] = def.Body
	}

	table, err := macro.Build(entries)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return table, nil
}

func evalOnce(ev *Evaluator, expr string, out io.Writer) error {
	values, err := ev.Evaluate(expr)
	if err != nil {
		return err
	}
	for _, line := range Render(values) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
