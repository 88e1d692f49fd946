package cli

import (
	"github.com/custodia-labs/lawdata/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lawdata/internal/adapters/driven/transport"
	"github.com/custodia-labs/lawdata/internal/connectors/comwel"
	"github.com/custodia-labs/lawdata/internal/connectors/lawgo"
	"github.com/custodia-labs/lawdata/internal/connectors/nts"
	"github.com/custodia-labs/lawdata/internal/core/services"
)

// ensureSettings opens the config store unless a settings service is set.
func ensureSettings() error {
	if settingsService != nil {
		return nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	settingsService = services.NewSettingsService(store)
	return nil
}

// ensureServices builds the API-backed services from the current settings
// unless they are set already. All connectors share one pooled client.
func ensureServices() error {
	if statuteService != nil && precedentService != nil && citationService != nil {
		return nil
	}
	if err := ensureSettings(); err != nil {
		return err
	}
	if err := settingsService.Validate(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	client := transport.NewHTTPClient(settings.HTTP)
	api, err := lawgo.NewClient(lawgo.ConfigFromSettings(*settings), client)
	if err != nil {
		return err
	}
	page := lawgo.NewPageFetcher(transport.WithoutRedirects(client), lawgo.DefaultPageURL, settings.HTTP.UserAgent)
	taxLaw := nts.NewClient(nts.Config{ActionURL: nts.DefaultActionURL, UserAgent: settings.HTTP.UserAgent}, client)
	caseInfo := comwel.NewClient(comwel.Config{PageURL: comwel.DefaultPageURL, UserAgent: settings.HTTP.UserAgent}, client)

	resolver := services.NewResolver(api, page, taxLaw, caseInfo)
	if statuteService == nil {
		statuteService = services.NewStatuteService(api)
	}
	if precedentService == nil {
		precedentService = services.NewPrecedentService(api, resolver)
	}
	if citationService == nil {
		citationService = services.NewCitationService()
	}
	return nil
}
