// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestSimpleMutableCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()
	require.NoError(db.Put([]byte("stale"), []byte{1}))

	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("k"), []byte{2}))
	require.NoError(mu.Remove(ctx, []byte("stale")))
	require.Equal(2, mu.Len())

	// changes are visible through the mutable but not the db
	v, err := mu.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	_, err = mu.GetValue(ctx, []byte("stale"))
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)

	require.NoError(mu.Commit(ctx))
	require.Zero(mu.Len())

	v, err = db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	has, err = db.Has([]byte("stale"))
	require.NoError(err)
	require.False(has)
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("k"), []byte{2}))

	// a fresh mutable sees nothing of an uncommitted one
	_, err := NewSimpleMutable(db).GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableCopiesValues(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	mu := NewSimpleMutable(memdb.New())
	v := []byte{1}
	require.NoError(mu.Insert(ctx, []byte("k"), v))
	v[0] = 9

	got, err := mu.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte{1}, got)
}
