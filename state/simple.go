// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
)

var _ Mutable = (*SimpleMutable)(nil)

type change struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers changes over [Database] until [Commit]. Dropping it
// without committing discards every change.
type SimpleMutable struct {
	db Database

	changes map[string]change
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]change)}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return slices.Clone(v.value), nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = change{value: slices.Clone(v)}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = change{delete: true}
	return nil
}

// Len returns the number of pending changes.
func (s *SimpleMutable) Len() int {
	return len(s.changes)
}

// Commit writes all pending changes in a single batch.
func (s *SimpleMutable) Commit(context.Context) error {
	keys := maps.Keys(s.changes)
	slices.Sort(keys)

	batch := s.db.NewBatch()
	for _, k := range keys {
		c := s.changes[k]
		if c.delete {
			if err := batch.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := batch.Put([]byte(k), c.value); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	clear(s.changes)
	return nil
}
