package infra

import (
	"github.com/m-mizutani/pipesched/pkg/domain/interfaces"
)

type Clients struct {
	buildHost interfaces.BuildHost
	catalog   interfaces.ServiceCatalog
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) BuildHost() interfaces.BuildHost {
	return x.buildHost
}
func (x *Clients) ServiceCatalog() interfaces.ServiceCatalog {
	return x.catalog
}

func WithBuildHost(client interfaces.BuildHost) Option {
	return func(x *Clients) {
		x.buildHost = client
	}
}

func WithServiceCatalog(client interfaces.ServiceCatalog) Option {
	return func(x *Clients) {
		x.catalog = client
	}
}
