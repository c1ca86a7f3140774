package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitsync/internal/domain/commands"
	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

// PushController handles the "push" subcommand.
type PushController struct {
	command commands.Push
}

// NewPushController creates a new PushController.
func NewPushController(command commands.Push) *PushController {
	return &PushController{command: command}
}

// GetBind returns the Cobra command metadata for the push controller.
func (it *PushController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "push",
		Short: "Commit every change with a timestamped message and push it",
		Long: `Stage all changes, commit them with a UTC timestamped message and push
the current branch to the remote, setting it as upstream.

With --device, device-only build properties are stripped before committing
and the commit message is tagged with the detected system.`,
	}
}

// AddFlags registers push-specific flags.
func (it *PushController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("device", false,
		"Strip device-only build properties and tag the commit with the system name")
}

// Execute runs the push flow in the working directory.
func (it *PushController) Execute(cmd *cobra.Command, _ []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}
	device, _ := cmd.Flags().GetBool("device")

	return it.command.Execute(inv.ctx, inv.settings, commands.PushOptions{
		WorkDir:    inv.workDir,
		SystemName: inv.systemName,
		Device:     device,
	})
}
