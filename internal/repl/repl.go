package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"addressbook/internal/handler"
)

// DefaultPrompt is printed before every input line.
const DefaultPrompt = "Enter a command: "

// Handler executes one input line.
type Handler interface {
	Handle(line string) (reply string, exit bool)
}

// Config holds loop configuration.
type Config struct {
	Prompt string
}

// REPL reads commands line by line and prints the handler's replies.
type REPL struct {
	cfg     Config
	handler Handler
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
}

// New creates a new REPL reading from in and writing to out.
func New(cfg Config, h Handler, in io.Reader, out io.Writer, logger *zap.Logger) *REPL {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return &REPL{
		cfg:     cfg,
		handler: h,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run prints the greeting and processes lines until an exit command, end of
// input, SIGINT/SIGTERM or context cancellation. Only read errors are
// returned; every other stop is a normal end of session.
func (r *REPL) Run(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go r.read(lines, readErr, done)

	r.println(handler.MsgWelcome)

	for {
		r.print(r.cfg.Prompt)

		select {
		case line := <-lines:
			reply, exit := r.handler.Handle(line)
			if reply != "" {
				r.println(reply)
			}
			if exit {
				r.logger.Info("session ended", zap.String("reason", "exit command"))
				return nil
			}

		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			r.println("")
			r.println(handler.MsgGoodbye)
			r.logger.Info("session ended", zap.String("reason", "end of input"))
			return nil

		case sig := <-sigChan:
			r.println("")
			r.println(handler.MsgGoodbye)
			r.logger.Info("session ended", zap.Stringer("signal", sig))
			return nil

		case <-ctx.Done():
			r.println("")
			r.println(handler.MsgGoodbye)
			r.logger.Info("session ended", zap.Error(ctx.Err()))
			return nil
		}
	}
}

// read forwards input lines until EOF, a read error or done is closed.
// A nil error on readErr means EOF.
func (r *REPL) read(lines chan<- string, readErr chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
	readErr <- scanner.Err()
}

func (r *REPL) print(s string) {
	_, _ = fmt.Fprint(r.out, s)
}

func (r *REPL) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
