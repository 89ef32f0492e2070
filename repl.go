package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/jcorbin/shilop/internal/logio"
)

const (
	replPrompt = "shilop> "
	replQuit   = ":quit"
)

// repl reads lines from the terminal, printing the final stack of each one
// value per line. Ctrl+C clears the line; Ctrl+D or :quit exits.
func repl(ev *Evaluator, historyPath string, log *logio.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(historyPath)
		if err != nil {
			log.Printf("WARN", "cannot save history: %v", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(replPrompt)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case replQuit:
			return nil
		}
		ln.AppendHistory(input)

		values, err := ev.Evaluate(input)
		if err != nil {
			log.Printf("ERROR", "%v", err)
			continue
		}
		for _, s := range Render(values) {
			fmt.Println(s)
		}
	}
}
