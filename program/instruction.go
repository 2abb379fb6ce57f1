// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/countervm/consts"
)

var (
	_ Instruction = (*InitializeCounter)(nil)
	_ Instruction = (*IncrementCounter)(nil)
)

// Instruction is a decoded command of the counter program.
//
// Wire format: [tag: 1 byte][payload].
type Instruction interface {
	GetTypeID() uint8
	// Marshal returns the wire encoding accepted by [ParseInstruction].
	Marshal() []byte
}

type InitializeCounter struct {
	InitialValue uint64 `json:"initialValue"`
}

func (*InitializeCounter) GetTypeID() uint8 {
	return consts.InitializeCounterID
}

func (i *InitializeCounter) Marshal() []byte {
	b := make([]byte, consts.ByteLen, consts.ByteLen+consts.Uint64Len)
	b[0] = consts.InitializeCounterID
	return binary.LittleEndian.AppendUint64(b, i.InitialValue)
}

type IncrementCounter struct{}

func (*IncrementCounter) GetTypeID() uint8 {
	return consts.IncrementCounterID
}

func (*IncrementCounter) Marshal() []byte {
	return []byte{consts.IncrementCounterID}
}

// ParseInstruction decodes [b] into one of the program's instructions.
//
// Any payload following the increment tag is ignored.
func ParseInstruction(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: missing tag", ErrMalformedInstruction)
	}
	tag, payload := b[0], b[1:]
	switch tag {
	case consts.InitializeCounterID:
		if len(payload) != consts.Uint64Len {
			return nil, fmt.Errorf(
				"%w: initialize payload is %d bytes, expected %d",
				ErrMalformedInstruction,
				len(payload),
				consts.Uint64Len,
			)
		}
		return &InitializeCounter{InitialValue: binary.LittleEndian.Uint64(payload)}, nil
	case consts.IncrementCounterID:
		return &IncrementCounter{}, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownInstruction, tag)
	}
}
