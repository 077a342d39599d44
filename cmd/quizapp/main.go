package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/letsssgooo/quizApp/internal/auth"
	"github.com/letsssgooo/quizApp/internal/config"
	"github.com/letsssgooo/quizApp/internal/lib/slogcustom"
	"github.com/letsssgooo/quizApp/internal/quiz"
	"github.com/letsssgooo/quizApp/internal/repository"
	"github.com/letsssgooo/quizApp/internal/shell"
	"github.com/letsssgooo/quizApp/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := setupLogger(cfg.SlogLevel())
	slog.SetDefault(log)
	slog.Info("starting quiz app...", "users", cfg.UsersPath, "quizzes", cfg.QuizzesPath, "results", cfg.ResultsPath)

	ctx := context.Background()

	st := storage.NewFileStorage(storage.Paths{
		Users:      cfg.UsersPath,
		Quizzes:    cfg.QuizzesPath,
		Results:    cfg.ResultsPath,
		Transcript: cfg.TranscriptPath,
	})

	repo := repository.New(st)
	if err = repo.LoadAll(ctx); err != nil {
		slog.Error("failed to load data", "err", err)
		os.Exit(1)
	}

	engine := quiz.NewEngine(repo, st)
	app := shell.NewApp(os.Stdin, os.Stdout, repo, auth.New(repo), engine, st)

	if err = app.Run(ctx); err != nil {
		slog.Error("quiz app stopped with error", "err", err)
		os.Exit(1)
	}
}

func setupLogger(level slog.Level) *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
}
