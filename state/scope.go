// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"
	"fmt"
)

var (
	_ Mutable = (*ScopedMutable)(nil)

	ErrInvalidKeyOrPermission = errors.New("key is not in scope or lacks permission")
)

// ScopedMutable restricts [Mutable] to the keys an invocation declared up
// front.
type ScopedMutable struct {
	keys Keys
	mu   Mutable
}

func NewScopedMutable(keys Keys, mu Mutable) *ScopedMutable {
	return &ScopedMutable{
		keys: keys,
		mu:   mu,
	}
}

func (s *ScopedMutable) Has(key []byte, perm Permissions) bool {
	return s.keys[string(key)].Has(perm)
}

func (s *ScopedMutable) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	if !s.Has(key, Read) {
		return nil, fmt.Errorf("%w: read %x", ErrInvalidKeyOrPermission, key)
	}
	return s.mu.GetValue(ctx, key)
}

func (s *ScopedMutable) Insert(ctx context.Context, key []byte, value []byte) error {
	if !s.Has(key, Write) {
		return fmt.Errorf("%w: write %x", ErrInvalidKeyOrPermission, key)
	}
	return s.mu.Insert(ctx, key, value)
}

func (s *ScopedMutable) Remove(ctx context.Context, key []byte) error {
	if !s.Has(key, Write) {
		return fmt.Errorf("%w: remove %x", ErrInvalidKeyOrPermission, key)
	}
	return s.mu.Remove(ctx, key)
}

func (s *ScopedMutable) Len() int {
	return len(s.keys)
}
