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

package mocks

import (
	"context"
	"testing"

	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

// Network mocks the full ledger network collaborator, covering the read,
// submission and funding interfaces declared by the custody packages.
type Network struct {
	AccountFunc  func(ctx context.Context, address string) (custody.LedgerAccount, error)
	BalancesFunc func(ctx context.Context, address string) ([]custody.Balance, error)
	BaseFeeFunc  func(ctx context.Context) (int64, error)
	SubmitFunc   func(ctx context.Context, tx *txnbuild.Transaction) error
	FundFunc     func(ctx context.Context, address string) error
}

func BaselineNetwork(t *testing.T) *Network {
	t.Helper()

	n := Network{
		AccountFunc: func(ctx context.Context, address string) (custody.LedgerAccount, error) {
			return custody.LedgerAccount{Address: address, Sequence: 42}, nil
		},
		BalancesFunc: func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{GenericBalance(GenericAmount)}, nil
		},
		BaseFeeFunc: func(context.Context) (int64, error) {
			return txnbuild.MinBaseFee, nil
		},
		SubmitFunc: func(context.Context, *txnbuild.Transaction) error {
			return nil
		},
		FundFunc: func(context.Context, string) error {
			return nil
		},
	}

	return &n
}

func (n *Network) Account(ctx context.Context, address string) (custody.LedgerAccount, error) {
	return n.AccountFunc(ctx, address)
}

func (n *Network) Balances(ctx context.Context, address string) ([]custody.Balance, error) {
	return n.BalancesFunc(ctx, address)
}

func (n *Network) BaseFee(ctx context.Context) (int64, error) {
	return n.BaseFeeFunc(ctx)
}

func (n *Network) Submit(ctx context.Context, tx *txnbuild.Transaction) error {
	return n.SubmitFunc(ctx, tx)
}

func (n *Network) Fund(ctx context.Context, address string) error {
	return n.FundFunc(ctx, address)
}
