package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/service"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/ui"
)

// Built-in verbs handled by the shell itself
const (
	VerbExit = ".exit"
	VerbHelp = "help"
)

// User-visible failure notices
const (
	NoticeInvalidInput    = "Invalid input"
	NoticeOperationFailed = "Operation failed"
)

// Shell is the interactive command loop of one session
type Shell struct {
	registry *service.Registry
	sess     *session.Session
	log      *logging.Logger
	printer  *ui.Printer
	input    *Input
	metrics  *monitoring.Metrics
	prompt   string
	state    State
}

// Option configures a Shell
type Option func(*Shell)

// WithPrompt prints prompt before every read; empty disables it
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithInput reads commands from r instead of stdin
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.input = NewInput(r) }
}

// WithPrinter replaces the printer built on the session output
func WithPrinter(p *ui.Printer) Option {
	return func(s *Shell) { s.printer = p }
}

// WithMetrics logs a command summary from m on shutdown
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Shell) { s.metrics = m }
}

// New creates a shell for sess dispatching through registry
func New(registry *service.Registry, sess *session.Session, log *logging.Logger, opts ...Option) *Shell {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Shell{
		registry: registry,
		sess:     sess,
		log:      log.ForSession(sess.ID.String(), sess.Username),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.printer == nil {
		s.printer = ui.NewPrinter(sess.Out)
	}
	if s.input == nil {
		s.input = NewInput(os.Stdin)
	}
	return s
}

// State returns the current loop state
func (s *Shell) State() State {
	return s.state
}

// Run greets the user and processes input until .exit, end of input or
// cancellation of ctx. It always ends with the farewell.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Debug("session started", zap.String("cwd", s.sess.Dir.Cwd()))
	s.printer.Greeting(s.sess.Username)
	s.printer.Location(s.sess.Dir.Cwd())

	for s.state == StateRunning {
		if s.prompt != "" {
			s.printer.Prompt(s.prompt)
		}

		line, err := s.input.Next(ctx)
		if err != nil {
			s.shutdown(reason(err))
			return nil
		}
		s.Dispatch(ctx, line)
	}
	return nil
}

// Dispatch runs one input line. Blank lines are ignored; every other
// line ends by printing the working directory unless it ended the session.
func (s *Shell) Dispatch(ctx context.Context, line string) {
	if s.state != StateRunning {
		return
	}
	cmd, ok := types.ParseCommand(line)
	if !ok {
		return
	}

	var err error
	switch cmd.Name {
	case VerbExit:
		if len(cmd.Args) == 0 {
			s.shutdown("exit")
			return
		}
		err = fmt.Errorf("%w: %s takes no operands", errs.ErrInvalidCommand, VerbExit)
	case VerbHelp:
		err = s.help(cmd.Args)
	default:
		err = s.execute(ctx, cmd)
	}

	if err != nil {
		s.report(err)
	}
	s.printer.Location(s.sess.Dir.Cwd())
}

// execute runs cmd through the registry, turning a handler panic into an
// ordinary failure so the session survives it.
func (s *Shell) execute(ctx context.Context, cmd types.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler panicked",
				zap.String("verb", cmd.Name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			err = fmt.Errorf("%w: %s panicked: %v", errs.ErrOperationFailed, cmd.Name, r)
		}
	}()
	return s.registry.Execute(ctx, cmd, s.sess)
}

func (s *Shell) report(err error) {
	if errs.IsInputError(err) {
		s.printer.Notice(NoticeInvalidInput)
		return
	}
	if errors.Is(err, context.Canceled) {
		s.log.Warn("command interrupted", zap.Error(err))
	}
	s.printer.Notice(NoticeOperationFailed)
}

// builtins are the verbs answered without the registry
var builtins = []struct{ verb, usage, description string }{
	{VerbHelp, VerbHelp + " [verb]", "Show this list or the usage of one verb"},
	{VerbExit, VerbExit, "Leave the file manager"},
}

// help lists every verb grouped by service, or the usage of one verb
func (s *Shell) help(args []string) error {
	switch len(args) {
	case 0:
		for _, svc := range s.registry.List(nil) {
			s.printer.Println(svc.Name + ":")
			for _, tool := range svc.Tools {
				s.usage(tool.Usage(), tool.Description)
			}
		}
		s.printer.Println("Shell:")
		for _, b := range builtins {
			s.usage(b.usage, b.description)
		}
		return nil
	case 1:
		for _, b := range builtins {
			if b.verb == args[0] {
				s.usage(b.usage, b.description)
				return nil
			}
		}
		tool, ok := s.registry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: no help for %s", errs.ErrInvalidCommand, args[0])
		}
		s.usage(tool.Usage(), tool.Description)
		return nil
	default:
		return fmt.Errorf("%w: %s takes at most one operand", errs.ErrInvalidCommand, VerbHelp)
	}
}

func (s *Shell) usage(usage, description string) {
	s.printer.Println(fmt.Sprintf("  %-48s %s", usage, description))
}

// shutdown is the single way out of the loop
func (s *Shell) shutdown(why string) {
	if s.state == StateExiting {
		return
	}
	s.state = StateExiting
	s.input.Close()

	if s.prompt != "" && why != "exit" {
		// the prompt is still on the line
		s.printer.Println("")
	}
	s.printer.Farewell(s.sess.Username)

	fields := []zap.Field{zap.String("reason", why)}
	if s.metrics != nil {
		snap := s.metrics.Snapshot()
		fields = append(fields,
			zap.Int64("commands", snap.Commands),
			zap.Int64("failures", snap.Failures),
			zap.Int64("bytes", snap.Bytes),
			zap.Duration("uptime", s.metrics.Uptime()),
		)
		if lines, err := s.metrics.Summary(); err == nil {
			fields = append(fields, zap.Strings("summary", lines))
		}
	}
	s.log.Debug("session ended", fields...)
}

func reason(err error) string {
	switch {
	case errors.Is(err, io.EOF):
		return "end of input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "interrupt"
	default:
		return "input error: " + err.Error()
	}
}
