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

package trust

import (
	"context"

	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// Oracle represents the balance read used to decide whether a trustline
// already exists.
type Oracle interface {
	Balance(ctx context.Context, address string, asset custody.Asset) (custody.Balance, bool, error)
}

// Builder represents the construction of the trust-establishment transaction.
type Builder interface {
	ChangeTrust(ctx context.Context, source string, asset custody.Asset) (*txnbuild.Transaction, error)
}

// Signer represents the signing capability for the holder account.
type Signer interface {
	Sign(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error)
}

// Submitter represents the submission of a signed transaction to the ledger.
type Submitter interface {
	Submit(ctx context.Context, tx *txnbuild.Transaction) error
}

// Trust manages trustlines for custodial accounts. A trustline is implicit in
// the presence of a balance entry, so existence is always checked against the
// live ledger state.
type Trust struct {
	oracle Oracle
	build  Builder
	sign   Signer
	submit Submitter
}

// New creates a new trustline manager with the given collaborators.
func New(oracle Oracle, build Builder, sign Signer, submit Submitter) *Trust {

	t := Trust{
		oracle: oracle,
		build:  build,
		sign:   sign,
		submit: submit,
	}

	return &t
}

// Ensure makes sure the holder account accepts the given asset. When a
// balance entry for the asset already exists, even at zero, the call is a
// no-op. Otherwise it submits a trust-establishment transaction signed by the
// holder and waits for the ledger to accept it. It must complete before any
// payment of the asset to the holder is submitted.
func (t *Trust) Ensure(ctx context.Context, holder custody.Account, asset custody.Asset) error {

	_, found, err := t.oracle.Balance(ctx, holder.Address, asset)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	tx, err := t.build.ChangeTrust(ctx, holder.Address, asset)
	if err != nil {
		return failure.TrustEstablishmentFailed{
			Description: failure.NewDescription("could not build trust transaction",
				failure.WithErr(err),
			),
			Address: holder.Address,
			Asset:   asset.String(),
		}
	}

	signed, err := t.sign.Sign(tx, holder)
	if err != nil {
		return failure.TrustEstablishmentFailed{
			Description: failure.NewDescription("could not sign trust transaction",
				failure.WithErr(err),
			),
			Address: holder.Address,
			Asset:   asset.String(),
		}
	}

	err = t.submit.Submit(ctx, signed)
	if err != nil {
		return failure.TrustEstablishmentFailed{
			Description: failure.NewDescription("could not submit trust transaction",
				failure.WithErr(err),
			),
			Address: holder.Address,
			Asset:   asset.String(),
		}
	}

	return nil
}
