package memory

import (
	"review-srv/internal/review/repository"
	"review-srv/internal/storage/memory"
)

type implRepository struct {
	driver *memory.Driver
	index  string
}

// New - Factory
func New(driver *memory.Driver, index string) repository.Repository {
	return &implRepository{
		driver: driver,
		index:  index,
	}
}
