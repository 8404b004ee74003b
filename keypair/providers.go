package keypair

import (
	"sync"
)

// Providers is a lookup of providers by Type. It is owned by the caller;
// there is no package level instance.
type Providers struct {
	sync.RWMutex
	providers       map[ /*Type*/ uint]Provider
	providersByName map[string]Provider
	defaultType     Type
}

func NewProviders() *Providers {
	return &Providers{
		providers:       map[uint]Provider{},
		providersByName: map[string]Provider{},
	}
}

func (p *Providers) Register(provider Provider) error {
	p.Lock()
	defer p.Unlock()

	// check duplication
	if _, found := p.providers[provider.Type().ID()]; found {
		return ProviderAlreadyRegisteredError.Newf("type=%q", provider.Type().String())
	}

	if _, found := p.providersByName[provider.Type().Name()]; found {
		return ProviderAlreadyRegisteredError.Newf("type=%q", provider.Type().Name())
	}

	p.providers[provider.Type().ID()] = provider
	p.providersByName[provider.Type().Name()] = provider

	if p.defaultType.Empty() {
		p.defaultType = provider.Type()
	}

	log.Debug("provider registered", "type", provider.Type())

	return nil
}

func (p *Providers) SetDefault(kt Type) error {
	provider, err := p.Provider(kt)
	if err != nil {
		return err
	}

	p.Lock()
	defer p.Unlock()

	p.defaultType = provider.Type()

	return nil
}

func (p *Providers) Provider(kt Type) (Provider, error) {
	p.RLock()
	defer p.RUnlock()

	var provider Provider
	var found bool
	if kt.ID() < 1 {
		provider, found = p.providersByName[kt.Name()]
	} else {
		provider, found = p.providers[kt.ID()]
	}

	if !found {
		return nil, ProviderNotRegisteredError.Newf("type=%q", kt.String())
	}

	return provider, nil
}

func (p *Providers) Default() (Provider, error) {
	p.RLock()
	kt := p.defaultType
	p.RUnlock()

	return p.Provider(kt)
}

func (p *Providers) NewSigner(seed []byte) (KeyedSigner, error) {
	provider, err := p.Default()
	if err != nil {
		return nil, err
	}

	return provider.NewSigner(seed)
}

func (p *Providers) NewSignerFromPKCS8(b []byte) (KeyedSigner, error) {
	provider, err := p.Default()
	if err != nil {
		return nil, err
	}

	return provider.NewSignerFromPKCS8(b)
}

func (p *Providers) NewVerifier(pk PublicKey) (Verifier, error) {
	provider, err := p.Default()
	if err != nil {
		return nil, err
	}

	return provider.NewVerifier(pk)
}
