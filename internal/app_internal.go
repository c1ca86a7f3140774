package internal

import "github.com/rios0rios0/gitsync/internal/domain/entities"

// AppInternal holds everything the CLI entry point needs after injection.
type AppInternal struct {
	controllers *[]entities.Controller
}

func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns the controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	if it.controllers == nil {
		return nil
	}
	return *it.controllers
}
