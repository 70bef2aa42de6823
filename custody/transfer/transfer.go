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

package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellar/go/txnbuild"
	"golang.org/x/sync/errgroup"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// Oracle represents the balance reads for source and destination accounts.
type Oracle interface {
	Balance(ctx context.Context, address string, asset custody.Asset) (custody.Balance, bool, error)
}

// Trust represents the trust establishment awaited before a payment to an
// account without a trustline.
type Trust interface {
	Ensure(ctx context.Context, holder custody.Account, asset custody.Asset) error
}

// Builder represents the construction of the payment transaction.
type Builder interface {
	Payment(ctx context.Context, source string, destination string, asset custody.Asset, amount int64) (*txnbuild.Transaction, error)
}

// Signer represents the signing capability for the source account.
type Signer interface {
	Sign(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error)
}

// Submitter represents the submission of a signed transaction to the ledger.
type Submitter interface {
	Submit(ctx context.Context, tx *txnbuild.Transaction) error
}

// Transfer orchestrates a single token movement between two custodial
// accounts: balance verification, conditional trust establishment and the
// atomic payment submission. Issuance is the same pipeline with the issuer as
// source. The orchestrator holds no state between calls; the ledger remains
// the sole source of truth and arbitrates concurrent transfers through its
// own settlement ordering.
type Transfer struct {
	oracle Oracle
	trust  Trust
	build  Builder
	sign   Signer
	submit Submitter
}

// New creates a new transfer orchestrator with the given collaborators.
func New(oracle Oracle, trust Trust, build Builder, sign Signer, submit Submitter) *Transfer {

	t := Transfer{
		oracle: oracle,
		trust:  trust,
		build:  build,
		sign:   sign,
		submit: submit,
	}

	return &t
}

// Transfer pays the given amount of the asset from one account to the other.
// The source sufficiency check is advisory and skipped entirely when the
// source is the asset's issuer, which has unlimited supply; the ledger
// performs the authoritative check at settlement. When the destination holds
// no trustline for the asset yet, one is established and awaited before the
// payment is submitted. Amounts are scaled integers at seven fractional
// digits.
func (t *Transfer) Transfer(ctx context.Context, from custody.Account, to custody.Account, asset custody.Asset, amount int64) error {

	if amount <= 0 {
		return fmt.Errorf("invalid transfer amount (amount: %d)", amount)
	}

	// The two reads are independent, so they go out concurrently.
	var fromBalance custody.Balance
	var fromFound, toFound bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromBalance, fromFound, err = t.oracle.Balance(gctx, from.Address, asset)
		if err != nil {
			return fmt.Errorf("could not read source balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		_, toFound, err = t.oracle.Balance(gctx, to.Address, asset)
		if err != nil {
			return fmt.Errorf("could not read destination balance: %w", err)
		}
		return nil
	})
	err := g.Wait()
	if err != nil {
		return err
	}

	issuing := from.Address == asset.Issuer
	if !issuing && (!fromFound || fromBalance.Amount < amount) {
		return failure.InsufficientBalance{
			Description: failure.NewDescription("source account does not hold enough of the asset"),
			Address:     from.Address,
			Asset:       asset.String(),
			Have:        fromBalance.Amount,
			Want:        amount,
		}
	}

	if !toFound {
		err = t.trust.Ensure(ctx, to, asset)
		if err != nil {
			return fmt.Errorf("could not establish destination trust: %w", err)
		}
	}

	tx, err := t.build.Payment(ctx, from.Address, to.Address, asset, amount)
	if err != nil {
		return fmt.Errorf("could not build payment transaction: %w", err)
	}

	signed, err := t.sign.Sign(tx, from)
	if err != nil {
		return fmt.Errorf("could not sign payment transaction: %w", err)
	}

	err = t.submit.Submit(ctx, signed)
	if errors.Is(err, context.DeadlineExceeded) {
		return failure.LedgerTimeout{
			Description: failure.NewDescription("payment submission did not complete",
				failure.WithErr(err),
			),
			Operation: "submit_payment",
		}
	}
	if err != nil {
		return failure.TransferSubmissionFailed{
			Description: failure.NewDescription("ledger rejected payment transaction",
				failure.WithErr(err),
			),
			FromAddress: from.Address,
			ToAddress:   to.Address,
			Asset:       asset.String(),
		}
	}

	return nil
}

// Issue pays freshly issued tokens from the issuer to the merchant account.
// The asset comes into existence with its first issuance; there is no
// separate mint step. The amount is bounded by the maximum representable
// amount and the issuer's supply is treated as unlimited.
func (t *Transfer) Issue(ctx context.Context, issuer custody.Account, merchant custody.Account, asset custody.Asset, amount int64) error {

	if issuer.Address != asset.Issuer {
		return fmt.Errorf("issuance source must be the asset issuer (issuer: %s, asset: %s)", issuer.Address, asset.String())
	}

	return t.Transfer(ctx, issuer, merchant, asset, amount)
}
