// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package oracle

import (
	"context"
	"errors"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// Network represents the ledger network read path needed by the oracle.
type Network interface {
	Balances(ctx context.Context, address string) ([]custody.Balance, error)
}

// Oracle reads current asset holdings of ledger accounts. It never caches,
// so every read reflects the ledger state at the time of the call.
type Oracle struct {
	net Network
}

// New creates a new oracle reading balances from the given ledger network.
func New(net Network) *Oracle {

	o := Oracle{
		net: net,
	}

	return &o
}

// Balance returns the account's balance entry for the given asset, along with
// whether such an entry exists. A missing entry is not an error; it signals
// that the account holds no trustline for the asset. Native asset requests
// match the native balance entry.
func (o *Oracle) Balance(ctx context.Context, address string, asset custody.Asset) (custody.Balance, bool, error) {

	balances, err := o.net.Balances(ctx, address)
	if errors.Is(err, context.DeadlineExceeded) {
		return custody.Balance{}, false, failure.LedgerTimeout{
			Description: failure.NewDescription("balance read did not complete",
				failure.WithString("address", address),
				failure.WithErr(err),
			),
			Operation: "load_account",
		}
	}
	if err != nil {
		return custody.Balance{}, false, failure.LedgerUnavailable{
			Description: failure.NewDescription("could not load account balances",
				failure.WithErr(err),
			),
			Address: address,
		}
	}

	for _, balance := range balances {
		if balance.Matches(asset) {
			return balance, true, nil
		}
	}

	return custody.Balance{}, false, nil
}

// All returns the full balance list of the account.
func (o *Oracle) All(ctx context.Context, address string) ([]custody.Balance, error) {

	balances, err := o.net.Balances(ctx, address)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, failure.LedgerTimeout{
			Description: failure.NewDescription("balance read did not complete",
				failure.WithString("address", address),
				failure.WithErr(err),
			),
			Operation: "load_account",
		}
	}
	if err != nil {
		return nil, failure.LedgerUnavailable{
			Description: failure.NewDescription("could not load account balances",
				failure.WithErr(err),
			),
			Address: address,
		}
	}

	return balances, nil
}
