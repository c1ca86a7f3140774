package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are assembled per invocation by the controllers layer
	return container.Provide(NewSystemClock)
}
