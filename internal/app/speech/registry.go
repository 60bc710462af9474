package speech

import (
	"context"
	"sort"
	"sync"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/config"
)

// ProviderCreator builds a provider from configuration
type ProviderCreator func(ctx context.Context, cfg config.SpeechConfig) (Provider, error)

var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function. Provider packages
// call it from init.
func RegisterProvider(name string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[name] = creator
}

// GetProviderCreator returns the creator function for a provider name
func GetProviderCreator(name string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrProviderNotFound, "speech provider %q (registered: %v)", name, listLocked())
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider names, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider creates the provider selected by cfg.Provider
func NewProvider(ctx context.Context, cfg config.SpeechConfig) (Provider, error) {
	creator, err := GetProviderCreator(cfg.Provider)
	if err != nil {
		return nil, err
	}
	return creator(ctx, cfg)
}
