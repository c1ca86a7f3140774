package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata of a subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a subcommand handler registered on the root command.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) error
}
