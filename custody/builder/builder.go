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

package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// validityWindow bounds how long a constructed transaction remains valid, in
// seconds. The ledger rejects the transaction if it is not included within
// the window, which makes a resubmission after a timeout safe.
const validityWindow = 30

// Network represents the ledger network reads needed for transaction
// construction, the source account sequence number and the current base fee.
type Network interface {
	Account(ctx context.Context, address string) (custody.LedgerAccount, error)
	BaseFee(ctx context.Context) (int64, error)
}

// Builder constructs unsigned single-operation transactions for the ledger.
// Every transaction gets a fresh sequence number from the source account and
// the current network base fee, and carries a bounded validity window.
type Builder struct {
	net Network
}

// New creates a new transaction builder on top of the given ledger network.
func New(net Network) *Builder {

	b := Builder{
		net: net,
	}

	return &b
}

// Payment constructs an unsigned transaction paying the given amount of the
// asset from the source account to the destination account.
func (b *Builder) Payment(ctx context.Context, source string, destination string, asset custody.Asset, amount int64) (*txnbuild.Transaction, error) {

	payment := txnbuild.Payment{
		Destination: destination,
		Amount:      custody.FormatAmount(amount),
		Asset:       convertAsset(asset),
	}

	return b.build(ctx, source, &payment)
}

// ChangeTrust constructs an unsigned transaction with which the source
// account authorizes itself to hold the given asset, up to the maximum
// representable limit.
func (b *Builder) ChangeTrust(ctx context.Context, source string, asset custody.Asset) (*txnbuild.Transaction, error) {

	if asset.IsNative() {
		return nil, fmt.Errorf("native asset needs no trustline")
	}

	changeTrust := txnbuild.ChangeTrust{
		Line: txnbuild.ChangeTrustAssetWrapper{
			Asset: txnbuild.CreditAsset{
				Code:   asset.Code,
				Issuer: asset.Issuer,
			},
		},
		Limit: txnbuild.MaxTrustlineLimit,
	}

	return b.build(ctx, source, &changeTrust)
}

func (b *Builder) build(ctx context.Context, source string, operation txnbuild.Operation) (*txnbuild.Transaction, error) {

	account, err := b.net.Account(ctx, source)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, failure.LedgerTimeout{
			Description: failure.NewDescription("account load did not complete",
				failure.WithString("address", source),
				failure.WithErr(err),
			),
			Operation: "load_account",
		}
	}
	if err != nil {
		return nil, failure.LedgerUnavailable{
			Description: failure.NewDescription("could not load source account",
				failure.WithErr(err),
			),
			Address: source,
		}
	}

	fee, err := b.net.BaseFee(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, failure.LedgerTimeout{
			Description: failure.NewDescription("base fee fetch did not complete",
				failure.WithErr(err),
			),
			Operation: "fetch_base_fee",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch base fee: %w", err)
	}

	sequenced := txnbuild.SimpleAccount{
		AccountID: account.Address,
		Sequence:  account.Sequence,
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sequenced,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{operation},
		BaseFee:              fee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(validityWindow),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not build transaction: %w", err)
	}

	return tx, nil
}

func convertAsset(asset custody.Asset) txnbuild.Asset {
	if asset.IsNative() {
		return txnbuild.NativeAsset{}
	}
	return txnbuild.CreditAsset{
		Code:   asset.Code,
		Issuer: asset.Issuer,
	}
}
