// internal/config/config.go
//
// Runtime configuration for the CLI.
// Precedence, lowest to highest:
//   1. Built-in defaults.
//   2. Variables from a .env file (never overriding the real environment).
//   3. Environment variables.
//   4. Command-line flags.

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every tunable of a run.
type Config struct {
	AnswersFile string // WORDS_ANSWERS_FILE / -answers
	AllowedFile string // WORDS_ALLOWED_FILE / -allowed
	WordsDB     string // WORDS_DB / -db
	LogLevel    zerolog.Level
	Daily       bool   // first round uses the word of the day
	DailySalt   string // HMAC salt for the word of the day
	NoColor     bool
}

// ErrHelp is returned when -h or -help was requested.
var ErrHelp = flag.ErrHelp

// Load reads .env files (default ".env", missing files are fine), the
// environment, then parses args. Usage text for bad flags goes to usage.
func Load(args []string, usage io.Writer, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	daily, err := envBool("DAILY", false)
	if err != nil {
		return Config{}, err
	}
	_, noColor := os.LookupEnv("NO_COLOR")

	c := Config{
		AnswersFile: os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile: os.Getenv("WORDS_ALLOWED_FILE"),
		WordsDB:     os.Getenv("WORDS_DB"),
		Daily:       daily,
		DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
		NoColor:     noColor,
	}
	level := getEnv("LOG_LEVEL", "warn")

	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&c.AnswersFile, "answers", c.AnswersFile, "target word list, one word per line")
	fs.StringVar(&c.AllowedFile, "allowed", c.AllowedFile, "allowed guess list, one word per line")
	fs.StringVar(&c.WordsDB, "db", c.WordsDB, "SQLite dictionary with answers and allowed tables")
	fs.StringVar(&level, "log-level", level, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.Daily, "daily", c.Daily, "start with the word of the day")
	fs.StringVar(&c.DailySalt, "daily-salt", c.DailySalt, "salt for the word of the day")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "render verdicts with plain markers")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	c.LogLevel = lvl
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
