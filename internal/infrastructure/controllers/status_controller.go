package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitsync/internal/domain/commands"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "Show what pull and push would act on, without changing anything",
	}
}

// AddFlags registers status-specific flags (none).
func (it *StatusController) AddFlags(_ *cobra.Command) {}

// Execute inspects the working directory.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(inv.ctx, inv.settings, commands.StatusOptions{
		WorkDir:    inv.workDir,
		SystemName: inv.systemName,
	})
}
