package app

import (
	"devproc/internal/power"
)

// PowerParams are the initial platform settings written by SetupPower.
// Zero values are left out of the document.
type PowerParams struct {
	DNSPort            int
	HTTPPort           int
	HTTPSPort          int
	FirewallRuleNumber int
	TLD                string
}

// SetupPower creates the platform settings document. It fails with
// power.ErrConfigExists when one is already present.
func (a *App) SetupPower(store *power.Store, params PowerParams) (*power.Settings, error) {
	store, err := a.powerStore(store)
	if err != nil {
		return nil, err
	}
	settings, err := store.Create(nil)
	if err != nil {
		return nil, err
	}
	if params.DNSPort > 0 {
		settings.SetDNSPort(params.DNSPort)
	}
	if params.HTTPPort > 0 {
		settings.SetHTTPPort(params.HTTPPort)
	}
	if params.HTTPSPort > 0 {
		settings.SetHTTPSPort(params.HTTPSPort)
	}
	if params.FirewallRuleNumber > 0 {
		settings.SetFirewallRuleNumber(params.FirewallRuleNumber)
	}
	tld := params.TLD
	if tld == "" {
		tld = power.DefaultTLD
	}
	settings.SetTLD(tld)
	if err := settings.Save(); err != nil {
		return nil, err
	}
	a.logger.Info("platform settings written", "path", store.Path)
	return settings, nil
}

// RemovePower deletes the platform settings document if present.
func (a *App) RemovePower(store *power.Store) error {
	store, err := a.powerStore(store)
	if err != nil {
		return err
	}
	return store.Delete()
}

func (a *App) powerStore(store *power.Store) (*power.Store, error) {
	if store != nil {
		return store, nil
	}
	if a.resolver != nil && a.resolver.Power != nil {
		return a.resolver.Power, nil
	}
	return power.DefaultStore()
}
