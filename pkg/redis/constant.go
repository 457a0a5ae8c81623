package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial ping.
	DefaultConnectTimeout = 5 * time.Second
	// ScanBatchSize is the COUNT hint used when scanning keys.
	ScanBatchSize = 100
)
