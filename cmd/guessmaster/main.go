// Package main provides the CLI entrypoint for guessmaster.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/guessmaster/internal/config"
	"github.com/verte-zerg/guessmaster/internal/console"
	"github.com/verte-zerg/guessmaster/internal/game"
	"github.com/verte-zerg/guessmaster/internal/generator"
	"github.com/verte-zerg/guessmaster/internal/model"
	"github.com/verte-zerg/guessmaster/internal/stats"
	"github.com/verte-zerg/guessmaster/internal/store"
	"github.com/verte-zerg/guessmaster/internal/tui"
)

const defaultLogLevel = "warn"

var (
	playDifficulty string
	playSeed       int64
	playPlain      bool
	playLogLevel   string
	boardTier      string
	boardLast      int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "guessmaster",
		Short:         "Guess the number between 1 and 100",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "", "start directly in a tier ("+strings.Join(game.TierNames(), ", ")+")")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for reproducible targets (0 = random)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "use the line-based console instead of the TUI")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&boardTier, "tier", "", "limit the exit scoreboard to one tier")
	rootCmd.Flags().IntVar(&boardLast, "last", 0, "limit the exit scoreboard to the last N rounds (0 = all)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTiersCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Play.Difficulty)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Play.Seed)
	applyBoolConfig(cmd, "plain", &playPlain, fileCfg.Play.Plain)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Play.LogLevel)

	cfg := model.Config{
		Difficulty: playDifficulty,
		Seed:       playSeed,
		Plain:      playPlain,
		LogLevel:   playLogLevel,
	}
	tier, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	cfg.Board, err = resolveBoardFilter(boardTier, boardLast)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open scoreboard: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close scoreboard")
		}
	}()

	session := game.NewSession(newGenerator(cfg.Seed))
	if tier.Valid() {
		session.Start(tier)
	}
	logger.Debug().Str("tier", tier.String()).Int64("seed", cfg.Seed).Bool("plain", cfg.Plain).Msg("starting session")

	if cfg.Plain || !isInteractive() {
		runner := console.New(session, st, logger)
		if err := runner.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to run console: %w", err)
		}
	} else {
		program := tea.NewProgram(tui.NewModel(session, st, logger), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
	}
	return printScoreboard(cmd, st, cfg.Board)
}

func printScoreboard(cmd *cobra.Command, st *store.Store, filter model.ScoreFilter) error {
	report, err := stats.BuildReport(cmd.Context(), st, filter)
	if err != nil {
		return fmt.Errorf("failed to load scoreboard: %w", err)
	}
	if len(report.Rounds) == 0 {
		return nil
	}
	if err := report.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write scoreboard: %w", err)
	}
	return nil
}

func newGenerator(seed int64) *generator.Generator {
	if seed == 0 {
		return generator.New()
	}
	return generator.NewSeeded(seed)
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func parseLogLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		level = defaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid --log-level value: %w", err)
	}
	return lvl, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List difficulty tiers",
		Args:  cobra.NoArgs,
		RunE:  runTiersCmd,
	}
}

func runTiersCmd(cmd *cobra.Command, _ []string) error {
	for i, tier := range game.Tiers() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d  %-6s  %2d tries\n", i+1, tier.String(), tier.MaxTries()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# guessmaster configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# difficulty = "medium"   # Start directly in a tier (%s)
# seed = 0                # Seed for reproducible targets (0 = random)
# plain = false           # Use the line-based console instead of the TUI
# log-level = %q       # Log level (debug, info, warn, error)
`,
		strings.Join(game.TierNames(), ", "),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) (game.Tier, error) {
	tier := game.TierNone
	if strings.TrimSpace(cfg.Difficulty) != "" {
		parsed, err := game.ParseTier(cfg.Difficulty)
		if err != nil {
			return game.TierNone, fmt.Errorf("invalid --difficulty value: %w", err)
		}
		tier = parsed
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return game.TierNone, err
	}
	return tier, nil
}

func resolveBoardFilter(tierName string, last int) (model.ScoreFilter, error) {
	if last < 0 {
		return model.ScoreFilter{}, fmt.Errorf("invalid --last value: must be >= 0")
	}
	filter := model.ScoreFilter{Last: last}
	if strings.TrimSpace(tierName) != "" {
		tier, err := game.ParseTier(tierName)
		if err != nil {
			return model.ScoreFilter{}, fmt.Errorf("invalid --tier value: %w", err)
		}
		filter.Tier = tier.String()
	}
	return filter, nil
}
