// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

// Rent sizes the balance an account must hold to be exempt from storage
// rent.
type Rent struct {
	LamportsPerByteYear    uint64  `json:"lamportsPerByteYear"`
	ExemptionThreshold     float64 `json:"exemptionThreshold"`
	AccountStorageOverhead uint64  `json:"accountStorageOverhead"`
}

type Config struct {
	Rent Rent `json:"rent"`
}

func NewDefaultConfig() Config {
	return Config{
		Rent: Rent{
			LamportsPerByteYear:    3_480,
			ExemptionThreshold:     2.0,
			AccountStorageOverhead: 128,
		},
	}
}

// MinimumBalance returns the lamports an account holding [space] bytes
// needs to be rent exempt.
func (r Rent) MinimumBalance(space uint64) uint64 {
	return uint64(float64((r.AccountStorageOverhead+space)*r.LamportsPerByteYear) * r.ExemptionThreshold)
}
