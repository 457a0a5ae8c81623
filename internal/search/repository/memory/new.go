package memory

import (
	"review-srv/internal/search/repository"
	"review-srv/internal/storage/memory"
)

type implRepository struct {
	driver *memory.Driver
}

// New - Factory. Evaluates queries in process over the memory driver.
func New(driver *memory.Driver) repository.Repository {
	return &implRepository{
		driver: driver,
	}
}
