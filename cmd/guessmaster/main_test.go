package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessmaster/internal/config"
	"github.com/verte-zerg/guessmaster/internal/game"
	"github.com/verte-zerg/guessmaster/internal/generator"
	"github.com/verte-zerg/guessmaster/internal/model"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateConfig(t *testing.T) {
	tier, err := validateConfig(model.Config{Difficulty: "Hard", LogLevel: "info"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier != game.TierHard {
		t.Fatalf("expected hard tier, got %v", tier)
	}

	tier, err = validateConfig(model.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier != game.TierNone {
		t.Fatalf("expected no tier, got %v", tier)
	}

	if _, err := validateConfig(model.Config{Difficulty: "legendary"}); err == nil {
		t.Fatalf("expected difficulty error")
	}
	if _, err := validateConfig(model.Config{LogLevel: "loud"}); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestParseLogLevelDefault(t *testing.T) {
	lvl, err := parseLogLevel("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lvl)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	tmpl := defaultConfigTemplate()
	var cfg config.FileConfig
	if _, err := toml.Decode(tmpl, &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Play.Difficulty != nil || cfg.Play.Seed != nil {
		t.Fatalf("expected commented-out template values")
	}

	uncommented := strings.ReplaceAll(tmpl, "# difficulty", "difficulty")
	uncommented = strings.ReplaceAll(uncommented, "# log-level", "log-level")
	if _, err := toml.Decode(uncommented, &cfg); err != nil {
		t.Fatalf("uncommented template does not decode: %v", err)
	}
	if cfg.Play.Difficulty == nil || *cfg.Play.Difficulty != "medium" {
		t.Fatalf("expected medium difficulty, got %v", cfg.Play.Difficulty)
	}
	if cfg.Play.LogLevel == nil || *cfg.Play.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %v", cfg.Play.LogLevel)
	}
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guessmaster", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != defaultConfigTemplate() {
		t.Fatalf("expected template contents")
	}

	if err := os.WriteFile(path, []byte("[play]\nseed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "[play]\nseed = 3\n" {
		t.Fatalf("expected existing config kept, got %q", data)
	}
}

func TestTiersCommand(t *testing.T) {
	out, err := runRoot(t, "", "tiers")
	if err != nil {
		t.Fatalf("tiers: %v", err)
	}
	want := "1  easy    15 tries\n2  medium  10 tries\n3  hard     7 tries\n4  insane   5 tries\n"
	if out != want {
		t.Fatalf("unexpected tiers output:\n%q\nwant\n%q", out, want)
	}
}

func TestPlainPlayWinsSeededRound(t *testing.T) {
	gen := generator.NewSeeded(7)
	gen.Target()
	target := gen.Target()

	out, err := runRoot(t, fmt.Sprintf("%d\nq\n", target), "--plain", "--seed", "7", "-d", "insane")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	for _, want := range []string{"INSANE | 1-100", "★ WINNER! 1 TRY! ★", "Scoreboard", "Rounds: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolveBoardFilter(t *testing.T) {
	filter, err := resolveBoardFilter("4", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Tier != "insane" || filter.Last != 3 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if filter, err := resolveBoardFilter("", 0); err != nil || filter != (model.ScoreFilter{}) {
		t.Fatalf("expected empty filter, got %+v %v", filter, err)
	}
	if _, err := resolveBoardFilter("legendary", 0); err == nil {
		t.Fatalf("expected tier error")
	}
	if _, err := resolveBoardFilter("", -1); err == nil {
		t.Fatalf("expected last error")
	}
}

func TestPlainPlayScoreboardFilter(t *testing.T) {
	gen := generator.NewSeeded(11)
	gen.Target()
	first := gen.Target()
	gen.Target()
	second := gen.Target()

	// Win an easy round, then lose an insane round with guesses that miss.
	miss := 1
	if second == 1 {
		miss = 2
	}
	misses := strings.Repeat(fmt.Sprintf("%d\n", miss), 5)
	input := fmt.Sprintf("1\n%d\nn\n4\n%sq\n", first, misses)

	out, err := runRoot(t, input, "--plain", "--seed", "11", "--tier", "insane", "--last", "5")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	summary := out[strings.LastIndex(out, "Scoreboard"):]
	for _, want := range []string{"Rounds: 1", "Won: 0  Lost: 1", "INSANE", "Recent", "5/5"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("scoreboard missing %q:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "EASY") {
		t.Fatalf("expected easy round filtered out:\n%s", summary)
	}
}

func TestPlainPlayWithoutRoundsSkipsScoreboard(t *testing.T) {
	out, err := runRoot(t, "", "--plain", "--seed", "1")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "SELECT DIFFICULTY") {
		t.Fatalf("expected selection screen:\n%s", out)
	}
	if strings.Contains(out, "Scoreboard") {
		t.Fatalf("expected no scoreboard without rounds:\n%s", out)
	}
}

func TestConfigFileAppliesUnlessFlagChanged(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[play]\ndifficulty = \"nope\"\nplain = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "invalid --difficulty value") {
		t.Fatalf("expected config difficulty error, got %v", err)
	}

	cmd = newRootCmd()
	out.Reset()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--difficulty", "easy"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected flag to override config, got %v", err)
	}
	if !strings.Contains(out.String(), "EASY | 1-100") {
		t.Fatalf("expected easy round from flag:\n%s", out.String())
	}
}
