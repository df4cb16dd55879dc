package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Gateway for tests and ephemeral sessions. Buckets
// round-trip through JSON so serialization behaves exactly like a durable
// backend.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewMemory builds an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{buckets: make(map[string][]byte)}
}

func (m *Memory) Read(ctx context.Context, bucket string, into any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	raw, ok := m.buckets[bucket]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("%w: decode bucket %s: %v", ErrStorage, bucket, err)
	}
	return nil
}

func (m *Memory) Write(ctx context.Context, bucket string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode bucket %s: %v", ErrStorage, bucket, err)
	}
	m.mu.Lock()
	m.buckets[bucket] = raw
	m.mu.Unlock()
	return nil
}
