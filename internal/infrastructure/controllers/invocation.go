package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitsync/config"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// invocation is everything a controller resolves from flags and the
// environment before handing over to a command.
type invocation struct {
	ctx        context.Context
	settings   *entities.Settings
	workDir    string
	systemName string
}

// newInvocation reads the persistent flags, assembles the settings once and
// resolves the absolute working directory.
func newInvocation(cmd *cobra.Command) (*invocation, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dir, _ := cmd.Flags().GetString("dir")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	workDir, err := resolveWorkDir(dir)
	if err != nil {
		return nil, err
	}

	settings, err := config.Assemble(configPath, os.Getenv)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &invocation{
		ctx:        ctx,
		settings:   settings,
		workDir:    workDir,
		systemName: entities.DetectSystem(runtime.GOOS, os.LookupEnv),
	}, nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return abs, nil
}
