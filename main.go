package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/shell"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wordle")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The root command runs the interactive
// shell, same as "play".
func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five-letter word in five tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config file (or WORDLE_CONFIG)")
	root.PersistentFlags().String("dictionary", "", "newline-delimited word list (default: embedded list)")
	root.PersistentFlags().String("log-level", "", "zerolog level (trace|debug|info|warn|error)")
	root.PersistentFlags().Bool("daily", false, "pick the secret from the date instead of at random")
	root.PersistentFlags().String("daily-salt", "", "salt for --daily word selection")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the interactive shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfgPath)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, cfgPath)
		},
	}
	serveCmd.Flags().String("port", "", "HTTP port (default 5175, or PORT)")
	serveCmd.Flags().String("client-origin", "", "allowed CORS origin (or CLIENT_ORIGIN)")

	root.AddCommand(playCmd, serveCmd)
	return root
}

func runPlay(cmd *cobra.Command, cfgPath string) error {
	cfg, err := LoadConfig(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	// Keep the shell readable: only warnings and up unless asked otherwise.
	setupLogging(cfg.LogLevel, zerolog.WarnLevel, os.Stderr)

	sh := shell.New(newService(cfg), cmd.InOrStdin(), cmd.OutOrStdout())
	return sh.Run(cmd.Context())
}

func runServe(cmd *cobra.Command, cfgPath string) error {
	cfg, err := LoadConfig(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, zerolog.InfoLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(newService(cfg), cfg.ClientOrigin)
	log.Info().Str("port", cfg.Port).Str("dictionary", dictionaryName(cfg)).Msg("starting wordle server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// newService wires the word source and picker selected by cfg.
func newService(cfg Config) *play.Service {
	var opts []play.Option
	if cfg.Daily {
		opts = append(opts, play.WithPicker(play.DailyPicker{Salt: cfg.DailySalt}))
	}
	return play.NewService(words.NewFileSource(cfg.Dictionary), opts...)
}

// setupLogging points the global logger at a console writer on w.
// level overrides def when it parses.
func setupLogging(level string, def zerolog.Level, w io.Writer) {
	lvl := def
	if level != "" {
		if l, err := zerolog.ParseLevel(level); err == nil {
			lvl = l
		}
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

func dictionaryName(cfg Config) string {
	if cfg.Dictionary == "" {
		return "embedded"
	}
	return cfg.Dictionary
}
