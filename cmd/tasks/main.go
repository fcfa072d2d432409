package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/anandhx/Task-Management-System/internal/adapter/cli"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/render"
	dbadapter "github.com/anandhx/Task-Management-System/internal/adapter/db"
	"github.com/anandhx/Task-Management-System/internal/adapter/export"
	appservice "github.com/anandhx/Task-Management-System/internal/app/service"
	"github.com/anandhx/Task-Management-System/internal/config"
	"github.com/anandhx/Task-Management-System/pkg/clierrors"
	"github.com/anandhx/Task-Management-System/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	taskRepository := dbadapter.NewTaskRepository(dbadapter.FileOpener(cfg))
	taskService := appservice.NewTaskService(taskRepository)
	style := render.Style{Color: cfg.Color, ClearScreen: cfg.ClearScreen}

	ctx := context.Background()
	if err := taskService.Initialize(ctx); err != nil {
		// Keep going: every later operation reports its own storage error.
		logger.Error("failed to initialize task database", zap.String("path", cfg.DbPath), zap.Error(err))
		lang := translator.ResolveLanguage(cfg.Language)
		style.Println(os.Stdout, render.KindError, clierrors.FromError(err, lang).Message)
	}

	menu := cli.NewMenu(taskService, export.NewExporter(taskService), cli.Options{
		In:        os.Stdin,
		Out:       os.Stdout,
		Style:     style,
		Language:  cfg.Language,
		Logger:    logger,
		ExportDir: cfg.ExportDir,
	})

	logger.Info("starting task manager", zap.String("db", cfg.DbPath), zap.String("lang", cfg.Language))
	if err := menu.Run(ctx); err != nil {
		logger.Error("menu stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}
}

// newLogger writes JSON logs to the configured file so they never mix with the menu.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{cfg.LogFile}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
