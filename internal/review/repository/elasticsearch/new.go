package elasticsearch

import (
	"review-srv/internal/review/repository"
	pkgES "review-srv/pkg/elasticsearch"
	"review-srv/pkg/log"
)

type implRepository struct {
	es    pkgES.IElasticsearch
	index string
	l     log.Logger
}

// New - Factory
func New(es pkgES.IElasticsearch, index string, l log.Logger) repository.Repository {
	return &implRepository{
		es:    es,
		index: index,
		l:     l,
	}
}
