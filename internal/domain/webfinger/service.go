package webfinger

import "strings"

// DomainResolver returns the identity provider domain for a single lookup
type DomainResolver func() string

// ServiceInterface defines the interface for webfinger operations
type ServiceInterface interface {
	Lookup(resource string) (*Response, error)
}

// serviceImpl implements ServiceInterface
type serviceImpl struct {
	domain DomainResolver
}

// NewService creates a new webfinger service. domain is called on every
// lookup so configuration changes apply without a restart.
func NewService(domain DomainResolver) ServiceInterface {
	return &serviceImpl{domain: domain}
}

// Lookup validates resource and builds the descriptor pointing at the
// configured identity provider. The resource is echoed back unmodified.
func (s *serviceImpl) Lookup(resource string) (*Response, error) {
	if !strings.HasPrefix(resource, AcctPrefix) {
		return nil, ErrInvalidResourceFormat
	}

	return &Response{
		Subject: resource,
		Links:   BuildLinks(IssuerURL(s.domain())),
	}, nil
}
