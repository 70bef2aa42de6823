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

package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellar/go/keypair"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// Funder represents the external funding call that brings a fresh account
// into existence on the ledger with a minimal native balance.
type Funder interface {
	Fund(ctx context.Context, address string) error
}

// Provisioner creates new ledger accounts and funds them minimally so they
// can participate in transactions.
type Provisioner struct {
	fund Funder
}

// New creates a new account provisioner using the given funder.
func New(fund Funder) *Provisioner {

	p := Provisioner{
		fund: fund,
	}

	return &p
}

// CreateAccount generates a fresh keypair and funds the resulting account on
// the ledger. The returned account carries the seed; the caller decides which
// trust boundary it is stored behind.
func (p *Provisioner) CreateAccount(ctx context.Context) (custody.Account, error) {

	pair, err := keypair.Random()
	if err != nil {
		return custody.Account{}, fmt.Errorf("could not generate keypair: %w", err)
	}

	account := custody.Account{
		Address: pair.Address(),
		Seed:    pair.Seed(),
	}

	err = p.fund.Fund(ctx, account.Address)
	if errors.Is(err, context.DeadlineExceeded) {
		return custody.Account{}, failure.LedgerTimeout{
			Description: failure.NewDescription("account funding did not complete",
				failure.WithString("address", account.Address),
				failure.WithErr(err),
			),
			Operation: "fund_account",
		}
	}
	if err != nil {
		return custody.Account{}, fmt.Errorf("could not fund account: %w", err)
	}

	return account, nil
}
