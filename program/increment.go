// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/ava-labs/countervm/codec"
)

// incrementCounter adds one to the stored count. The count wraps to zero
// past the maximum uint64.
func incrementCounter(host Host, programID codec.Address, accounts *IncrementAccounts) error {
	counter := accounts.Counter
	if counter.Owner != programID {
		return fmt.Errorf("%w: %s is owned by %s", ErrUnauthorized, counter.Key, counter.Owner)
	}
	if counter.IsClosed() {
		return fmt.Errorf("%w: %s", ErrAccountClosed, counter.Key)
	}
	if !counter.IsWritable {
		return fmt.Errorf("%w: counter %s is not writable", ErrUnauthorized, counter.Key)
	}

	c, err := UnmarshalCounterAccount(counter.Data)
	if err != nil {
		return err
	}
	c.Count++
	if err := c.Write(counter.Data); err != nil {
		return err
	}
	host.Log("Counter incremented to: %d", c.Count)
	return nil
}
