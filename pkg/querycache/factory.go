package querycache

import (
	"errors"
	"fmt"
)

// BackendType represents the type of cache backend.
type BackendType string

const (
	// BackendTypeMemory represents the in-process memory backend.
	BackendTypeMemory BackendType = "memory"

	// BackendTypeNATS represents the NATS JetStream KV backend.
	BackendTypeNATS BackendType = "nats"

	// BackendTypeNone disables caching.
	BackendTypeNone BackendType = "none"
)

// Defaults applied when configuration leaves a field unset.
const (
	DefaultMaxSize    = 1000
	DefaultNATSBucket = "catalog-query-cache"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS backend")
	ErrUnsupportedBackend   = errors.New("unsupported backend type")
	ErrFetchFuncRequired    = errors.New("fetch function required")
	ErrMutationFuncRequired = errors.New("mutation function required")
)

// BackendConfig configures the cache backend.
type BackendConfig struct {
	// Type is the backend type. Defaults to memory.
	Type BackendType

	// MaxSize bounds the memory backend.
	MaxSize int

	// NATS configures the NATS KV backend.
	NATS *NATSKVConfig
}

// DefaultBackendConfig returns the default backend configuration.
func DefaultBackendConfig() *BackendConfig {
	return &BackendConfig{
		Type:    BackendTypeMemory,
		MaxSize: DefaultMaxSize,
	}
}

// NewBackendFromConfig creates a cache backend from configuration.
func NewBackendFromConfig(config *BackendConfig) (Backend, error) {
	if config == nil {
		config = DefaultBackendConfig()
	}

	switch config.Type {
	case BackendTypeMemory, "":
		return NewMemoryBackend(config.MaxSize), nil

	case BackendTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVBackend(config.NATS)

	case BackendTypeNone:
		return NewNoopBackend(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, config.Type)
	}
}
