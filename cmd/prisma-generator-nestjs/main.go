package main

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	nestjsdto "github.com/sohibe-xyz/prisma-generator-nestjs"
)

func main() {
	var (
		schemaPath   string
		output       string
		mode         string
		fileNameCase string
		dtoDir       string
		entityDir    string
		schemas      bool
		showDefaults bool
		exhaustive   bool
		envFile      string
		logLevel     string
		watch        bool
		dryRun       bool
	)

	rootCmd := &cobra.Command{
		Use:   "prisma-generator-nestjs",
		Short: "Generate NestJS DTO classes and Zod schemas from a Prisma data model",
		Long: `prisma-generator-nestjs

Reads a resolved Prisma data-model document (DMMF JSON) and derives, per
model, plain/create/update/connect DTO classes, entity classes and optional
Zod validation schemas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(logLevel)
			loadEnvironment(envFile, logger)

			if schemaPath == "-" {
				if env := os.Getenv("PRISMA_DMMF_PATH"); env != "" {
					schemaPath = env
				}
			}
			if output == "" {
				output = os.Getenv("PRISMA_GENERATOR_OUTPUT")
			}

			cfg := nestjsdto.Config{
				Output:                  output,
				Mode:                    nestjsdto.OutputMode(mode),
				Case:                    nestjsdto.FileNameCase(fileNameCase),
				DtoDir:                  dtoDir,
				EntityDir:               entityDir,
				GenerateSchemas:         schemas,
				ShowDefaultValues:       showDefaults,
				ExhaustiveRelationCheck: exhaustive,
			}
			runner := nestjsdto.New(cfg,
				nestjsdto.WithSchemaPath(schemaPath),
				nestjsdto.WithLogger(logger),
				nestjsdto.WithDryRun(dryRun),
			)

			ctx := cmd.Context()
			if err := runner.Run(ctx); err != nil {
				return err
			}
			if !watch || schemaPath == "-" {
				return nil
			}
			return watchAndRegenerate(ctx, schemaPath, runner, logger)
		},
	}

	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "-", "path of the data-model document, - for stdin")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "all", "output mode: all, dto or entity")
	rootCmd.Flags().StringVar(&fileNameCase, "file-name-case", "kebab", "file name casing: camel, kebab or snake")
	rootCmd.Flags().StringVar(&dtoDir, "dto-dir", "", "sub-directory for DTO files within each model directory")
	rootCmd.Flags().StringVar(&entityDir, "entity-dir", "", "sub-directory for entity files within each model directory")
	rootCmd.Flags().BoolVar(&schemas, "schemas", false, "generate Zod validation schemas")
	rootCmd.Flags().BoolVar(&showDefaults, "show-defaults", false, "surface defaulted fields in create DTOs as optional")
	rootCmd.Flags().BoolVar(&exhaustive, "exhaustive-relation-check", true, "check every relation backing a surfaced foreign key")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "env file to load before reading environment variables")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the schema file changes")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files a run would produce without writing them")

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(level string) *logrus.Logger {
	logger := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func loadEnvironment(envFile string, logger *logrus.Logger) {
	if envFile == "" {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.Warnf("Could not load env file %s: %v", envFile, err)
	}
}

// watchAndRegenerate reruns the generator whenever the schema file is
// rewritten. Editors often replace the file instead of writing in place, so
// the path is re-added after rename/remove events.
func watchAndRegenerate(ctx context.Context, path string, runner *nestjsdto.Runner, logger *logrus.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return err
	}
	logger.Infof("watching %s for changes", path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Infof("schema changed, regenerating")
				if err := runner.Run(ctx); err != nil {
					logger.Errorf("regeneration failed: %v", err)
				}
			}
			if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				// Re-add the path; the watch follows the inode otherwise.
				_ = watcher.Add(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		}
	}
}
