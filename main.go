package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/session"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordle: %v\n", err)
		os.Exit(2)
	}

	// Logs go to stderr so they never interleave with the grid on stdout.
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isTerminal(os.Stderr),
	})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	lists, err := words.Load(context.Background(), words.Sources{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		DB:          cfg.WordsDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var picker session.TargetPicker = lists.Answers
	if cfg.Daily {
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily word enabled")
		picker = daily.NewPicker(lists.Answers, cfg.DailySalt, nil)
	}

	colorOn := !cfg.NoColor && isTerminal(os.Stdout)
	out := colorable.NewColorableStdout()
	fmt.Fprintln(out, "Hello, wordle!")

	loop := session.New(os.Stdin, out, picker, lists.Allowed, render.New(colorOn))
	if _, err := loop.Run(); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
