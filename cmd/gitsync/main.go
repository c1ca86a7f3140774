package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitsync/internal"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitsync",
		Short: "Keep a working copy in sync with its GitHub remote",
		Long: `Pull and push helpers for a single repository.

Before touching the repository both flows make sure a git identity is
configured and that the remote points at HTTPS instead of SSH.

  gitsync pull           Stash local changes, rebase onto the remote branch, restore them
  gitsync push           Stage everything, commit with a UTC timestamp and push
  gitsync push --device  Same, after removing device-only build overrides
  gitsync status         Describe what pull or push would work with`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().StringP("dir", "C", "",
		"Repository directory (default: current directory)")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

// exitCode maps an execution error to the process exit status.
func exitCode(err error) int {
	var exitErr *entities.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		var exitErr *entities.ExitError
		if !errors.As(err, &exitErr) {
			logger.Errorf("Error executing 'gitsync': %s", err)
		}
		os.Exit(exitCode(err))
	}
}
