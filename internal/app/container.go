package app

import (
	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/nfrund/storefront/internal/config"
	"github.com/nfrund/storefront/internal/handlers"
	"github.com/nfrund/storefront/internal/pubsub"
	"github.com/samber/do/v2"
)

// NewContainer builds the dependency container for the storefront. Services
// are constructed lazily on first invocation.
func NewContainer(cfg config.Provider) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i do.Injector) (*apiclient.Client, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return apiclient.New(cfg.GetAPIBaseURL(), apiclient.WithTimeout(cfg.GetAPITimeout())), nil
	})

	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.LoginHandler, error) {
		client := do.MustInvoke[*apiclient.Client](i)
		bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
		return handlers.NewLoginHandler(client, bridge), nil
	})

	return injector
}
