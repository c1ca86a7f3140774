package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitsync/internal/domain/commands"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// PullController handles the "pull" subcommand.
type PullController struct {
	command commands.Pull
}

// NewPullController creates a new PullController.
func NewPullController(command commands.Pull) *PullController {
	return &PullController{command: command}
}

// GetBind returns the Cobra command metadata for the pull controller.
func (it *PullController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pull",
		Short: "Stash local edits, rebase on the remote branch and restore them",
		Long: `Pull the current branch with rebase.

Local uncommitted changes (including untracked files) are stashed before
fetching and restored after a successful rebase. A failed rebase leaves the
stash in place so conflicts can be resolved with git directly.`,
	}
}

// AddFlags registers pull-specific flags (none).
func (it *PullController) AddFlags(_ *cobra.Command) {}

// Execute runs the pull flow in the working directory.
func (it *PullController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(inv.ctx, inv.settings, commands.PullOptions{
		WorkDir:    inv.workDir,
		SystemName: inv.systemName,
	})
}
