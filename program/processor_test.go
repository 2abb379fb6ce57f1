// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/countervm/account"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
)

const testRentExemptLamports = 946_560

var errHostRejected = errors.New("host rejected")

func newTestAddress() codec.Address {
	return codec.CreateAddress(ids.GenerateTestID())
}

// allocate mimics the system allocator.
func allocate(
	_ context.Context,
	payer *account.Info,
	newAccount *account.Info,
	lamports uint64,
	space uint64,
	owner codec.Address,
) error {
	payer.Lamports -= lamports
	newAccount.Lamports += lamports
	newAccount.Data = make([]byte, space)
	newAccount.Owner = owner
	return nil
}

func TestProcessInitialize(t *testing.T) {
	programID := newTestAddress()

	tests := []struct {
		name         string
		accounts     func() []*account.Info
		setup        func(*MockHost, []*account.Info)
		expectedErr  error
		expectedData []byte
	}{
		{
			name: "fresh account",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
					{Key: newTestAddress(), IsSigner: true, IsWritable: true, Lamports: 1_000_000},
					{Key: account.SystemProgramID},
				}
			},
			setup: func(host *MockHost, accts []*account.Info) {
				gomock.InOrder(
					host.EXPECT().MinimumBalance(uint64(consts.CounterAccountSize)).Return(uint64(testRentExemptLamports)),
					host.EXPECT().CreateAccount(
						gomock.Any(),
						accts[1],
						accts[0],
						uint64(testRentExemptLamports),
						uint64(consts.CounterAccountSize),
						programID,
					).DoAndReturn(allocate),
					host.EXPECT().Log("Counter initialized with value: %d", uint64(5)),
				)
			},
			expectedData: []byte{5, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "payer did not sign",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
					{Key: newTestAddress(), IsWritable: true, Lamports: 1_000_000},
					{Key: account.SystemProgramID},
				}
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name: "counter not writable",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true},
					{Key: newTestAddress(), IsSigner: true, IsWritable: true, Lamports: 1_000_000},
					{Key: account.SystemProgramID},
				}
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name: "wrong allocator",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
					{Key: newTestAddress(), IsSigner: true, IsWritable: true, Lamports: 1_000_000},
					{Key: newTestAddress()},
				}
			},
			expectedErr: ErrInvalidAllocator,
		},
		{
			name: "counter already initialized",
			accounts: func() []*account.Info {
				return []*account.Info{
					{
						Key:        newTestAddress(),
						IsSigner:   true,
						IsWritable: true,
						Lamports:   testRentExemptLamports,
						Owner:      programID,
						Data:       []byte{9, 0, 0, 0, 0, 0, 0, 0},
					},
					{Key: newTestAddress(), IsSigner: true, IsWritable: true, Lamports: 1_000_000},
					{Key: account.SystemProgramID},
				}
			},
			expectedErr:  ErrAccountCreationFailed,
			expectedData: []byte{9, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "host rejects creation",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
					{Key: account.SystemProgramID},
				}
			},
			setup: func(host *MockHost, _ []*account.Info) {
				host.EXPECT().MinimumBalance(gomock.Any()).Return(uint64(testRentExemptLamports))
				host.EXPECT().CreateAccount(
					gomock.Any(),
					gomock.Any(),
					gomock.Any(),
					gomock.Any(),
					gomock.Any(),
					gomock.Any(),
				).Return(errHostRejected)
			},
			expectedErr: errHostRejected,
		},
		{
			name: "missing accounts",
			accounts: func() []*account.Info {
				return []*account.Info{
					{Key: newTestAddress(), IsSigner: true, IsWritable: true},
				}
			},
			expectedErr: ErrNotEnoughAccounts,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			host := NewMockHost(ctrl)
			accts := tt.accounts()
			if tt.setup != nil {
				tt.setup(host, accts)
			}

			ix := &InitializeCounter{InitialValue: 5}
			err := New().Process(context.Background(), host, programID, accts, ix.Marshal())
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedData != nil {
				require.Equal(tt.expectedData, accts[0].Data)
			}
		})
	}
}

func TestProcessInitializeHostErrorIsCreationFailure(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	host := NewMockHost(ctrl)
	host.EXPECT().MinimumBalance(gomock.Any()).Return(uint64(testRentExemptLamports))
	host.EXPECT().CreateAccount(
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
	).Return(errHostRejected)

	accts := []*account.Info{
		{Key: newTestAddress(), IsSigner: true, IsWritable: true},
		{Key: newTestAddress(), IsSigner: true, IsWritable: true},
		{Key: account.SystemProgramID},
	}
	ix := &InitializeCounter{InitialValue: 1}
	err := New().Process(context.Background(), host, newTestAddress(), accts, ix.Marshal())
	require.ErrorIs(err, ErrAccountCreationFailed)
	require.ErrorIs(err, errHostRejected)
	require.Nil(accts[0].Data)
}

func TestProcessIncrement(t *testing.T) {
	programID := newTestAddress()

	tests := []struct {
		name         string
		counter      *account.Info
		expectLog    bool
		expectedErr  error
		expectedData []byte
	}{
		{
			name: "increment",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Lamports:   testRentExemptLamports,
				Owner:      programID,
				Data:       []byte{5, 0, 0, 0, 0, 0, 0, 0},
			},
			expectLog:    true,
			expectedData: []byte{6, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "carry",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Lamports:   testRentExemptLamports,
				Owner:      programID,
				Data:       []byte{0xff, 0, 0, 0, 0, 0, 0, 0},
			},
			expectLog:    true,
			expectedData: []byte{0, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "wraps at max",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Lamports:   testRentExemptLamports,
				Owner:      programID,
				Data:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			},
			expectLog:    true,
			expectedData: []byte{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "not owned by program",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Lamports:   testRentExemptLamports,
				Owner:      newTestAddress(),
				Data:       []byte{5, 0, 0, 0, 0, 0, 0, 0},
			},
			expectedErr:  ErrUnauthorized,
			expectedData: []byte{5, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "closed",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Owner:      programID,
				Data:       []byte{5, 0, 0, 0, 0, 0, 0, 0},
			},
			expectedErr:  ErrAccountClosed,
			expectedData: []byte{5, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "not writable",
			counter: &account.Info{
				Key:      newTestAddress(),
				Lamports: testRentExemptLamports,
				Owner:    programID,
				Data:     []byte{5, 0, 0, 0, 0, 0, 0, 0},
			},
			expectedErr:  ErrUnauthorized,
			expectedData: []byte{5, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "short data",
			counter: &account.Info{
				Key:        newTestAddress(),
				IsWritable: true,
				Lamports:   testRentExemptLamports,
				Owner:      programID,
				Data:       []byte{5, 0, 0},
			},
			expectedErr:  ErrCorruptState,
			expectedData: []byte{5, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			host := NewMockHost(ctrl)
			if tt.expectLog {
				host.EXPECT().Log(gomock.Any(), gomock.Any())
			}

			err := New().Process(
				context.Background(),
				host,
				programID,
				[]*account.Info{tt.counter},
				(&IncrementCounter{}).Marshal(),
			)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expectedData, tt.counter.Data)
		})
	}
}

func TestProcessClosedIsUnauthorized(t *testing.T) {
	require.ErrorIs(t, ErrAccountClosed, ErrUnauthorized)
}

func TestProcessRejectsBadInstructions(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		accounts    []*account.Info
		expectedErr error
	}{
		{
			name:        "empty",
			data:        nil,
			expectedErr: ErrMalformedInstruction,
		},
		{
			name:        "unknown",
			data:        []byte{0x07},
			expectedErr: ErrUnknownInstruction,
		},
		{
			name:        "increment without accounts",
			data:        []byte{0x01},
			expectedErr: ErrNotEnoughAccounts,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			host := NewMockHost(ctrl)

			err := New().Process(context.Background(), host, newTestAddress(), tt.accounts, tt.data)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
