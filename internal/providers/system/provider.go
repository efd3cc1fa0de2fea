package system

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// Sub-commands of the os verb
const (
	FlagEOL          = "--EOL"
	FlagCPUs         = "--cpus"
	FlagHomeDir      = "--homedir"
	FlagUsername     = "--username"
	FlagArchitecture = "--architecture"
)

// Provider implements the os verb
type Provider struct {
	facts Facts
}

// NewProvider creates a system provider
func NewProvider(facts Facts) *Provider {
	if facts == nil {
		facts = NewHostFacts()
	}
	return &Provider{facts: facts}
}

// Definition returns service metadata
func (s *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Host operating system information",
		Category:    types.CategorySystem,
		Tools: []types.Tool{
			{
				Verb:        "os",
				Description: "Print host information",
				Parameters: []types.Parameter{
					{
						Name:        FlagEOL + "|" + FlagCPUs + "|" + FlagHomeDir + "|" + FlagUsername + "|" + FlagArchitecture,
						Description: "Fact to print",
						Required:    true,
					},
				},
			},
		},
	}
}

// Execute runs a system operation
func (s *Provider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) error {
	switch cmd.Name {
	case "os":
		return s.os(sess.Out, cmd.Arg(0))
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidCommand, cmd.Name)
	}
}

func (s *Provider) os(w io.Writer, flag string) error {
	switch flag {
	case FlagEOL:
		return s.eol(w)
	case FlagCPUs:
		return s.cpus(w)
	case FlagHomeDir:
		return s.homeDir(w)
	case FlagUsername:
		return s.username(w)
	case FlagArchitecture:
		_, err := fmt.Fprintln(w, s.facts.Architecture())
		return err
	default:
		return fmt.Errorf("os %s: %w", flag, errs.ErrInvalidSubcommand)
	}
}

func (s *Provider) eol(w io.Writer) error {
	_, err := fmt.Fprintln(w, strconv.Quote(s.facts.EOL()))
	return err
}

func (s *Provider) cpus(w io.Writer) error {
	cpus, err := s.facts.CPUs()
	if err != nil {
		return fmt.Errorf("os %s: %w: %w", FlagCPUs, errs.ErrOperationFailed, err)
	}

	if _, err := fmt.Fprintf(w, "Overall amount of CPUS: %d\n", len(cpus)); err != nil {
		return err
	}
	for _, cpu := range cpus {
		line := cpu.Model
		if cpu.Hz > 0 {
			line = fmt.Sprintf("%s, %.2f GHz", cpu.Model, cpu.GHz())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Provider) homeDir(w io.Writer) error {
	home, err := s.facts.HomeDir()
	if err != nil {
		return fmt.Errorf("os %s: %w: %w", FlagHomeDir, errs.ErrOperationFailed, err)
	}
	_, err = fmt.Fprintln(w, home)
	return err
}

func (s *Provider) username(w io.Writer) error {
	name, err := s.facts.Username()
	if err != nil {
		return fmt.Errorf("os %s: %w: %w", FlagUsername, errs.ErrOperationFailed, err)
	}
	_, err = fmt.Fprintln(w, name)
	return err
}
