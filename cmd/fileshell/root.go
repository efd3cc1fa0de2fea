package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/config"
	"github.com/GriffinCanCode/fileshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/providers/filesystem"
	"github.com/GriffinCanCode/fileshell/internal/providers/system"
	"github.com/GriffinCanCode/fileshell/internal/service"
	"github.com/GriffinCanCode/fileshell/internal/shared/utils"
	"github.com/GriffinCanCode/fileshell/internal/shell"
	"github.com/GriffinCanCode/fileshell/internal/stream"
)

const prompt = "> "

func newRootCmd(cfg *config.Config, stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fileshell",
		Short: "Interactive file manager shell",
		Long: `fileshell is a line-oriented file manager. It starts in your home
directory and reads one command per line:

  up, cd, ls, cat, add, rn, cp, mv, rm, hash, compress, decompress,
  os --EOL|--cpus|--homedir|--username|--architecture, help, .exit

Settings can also come from the environment: LOG_LEVEL, LOG_DEV,
FM_USERNAME, FM_START_DIR, FM_CODEC, FM_CHUNK_SIZE, FM_HASH, FM_METRICS.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			sh, log, err := buildShell(cfg, stdin, stdout, isTerminal(stdin))
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			return sh.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Shell.Username, "username", cfg.Shell.Username, "Name used in the greeting and farewell")
	flags.StringVar(&cfg.Shell.StartDir, "start-dir", cfg.Shell.StartDir, "Directory to start in (default: home directory)")
	flags.StringVar(&cfg.Shell.Codec, "codec", cfg.Shell.Codec, fmt.Sprintf("Compression codec %v", codec.Names()))
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Diagnostic log level written to stderr")

	return cmd
}

// buildShell wires configuration, providers and middleware into a shell
func buildShell(cfg *config.Config, stdin io.Reader, stdout io.Writer, interactive bool) (*shell.Shell, *logging.Logger, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level
	log, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	home, homeErr := os.UserHomeDir()
	start := cfg.Shell.StartDir
	if start == "" {
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot determine home directory: %w", homeErr)
		}
		start = home
	}
	dir, err := session.NewDirectory(start)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start directory: %w", err)
	}

	c, err := codec.Lookup(cfg.Shell.Codec)
	if err != nil {
		return nil, nil, err
	}
	hasher, err := utils.NewHasher(utils.HashAlgorithm(cfg.Shell.HashAlgorithm))
	if err != nil {
		return nil, nil, err
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	engine := stream.New(stream.Options{ChunkSize: cfg.Shell.ChunkSize})
	registry := service.NewRegistry()
	fs := filesystem.NewProvider(
		engine,
		filesystem.WithCodec(c),
		filesystem.WithHasher(hasher),
		filesystem.WithMetrics(metrics),
		filesystem.WithHome(home),
	)
	if err := registry.Register(fs); err != nil {
		return nil, nil, err
	}
	if err := registry.Register(system.NewProvider(system.NewHostFacts())); err != nil {
		return nil, nil, err
	}
	if metrics != nil {
		registry.Use(monitoring.Middleware(metrics))
	}
	registry.Use(shell.LogMiddleware(log))

	sess := session.New(cfg.Shell.Username, dir, stdout)
	log.Debug("configured",
		zap.String("session_id", sess.ID.String()),
		zap.String("codec", c.Name()),
		zap.String("hash", string(hasher.Algorithm())),
		zap.Int("chunk_size", engine.ChunkSize()),
		zap.Bool("interactive", interactive),
		zap.Any("registry", registry.Stats()),
	)

	opts := []shell.Option{
		shell.WithInput(stdin),
		shell.WithMetrics(metrics),
	}
	if interactive {
		opts = append(opts, shell.WithPrompt(prompt))
	}
	return shell.New(registry, sess, log, opts...), log, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
