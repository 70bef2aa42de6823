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

package builder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tocopay/toco-ledger/custody/builder"
	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
	"github.com/tocopay/toco-ledger/testing/mocks"
)

func TestBuilder_Payment(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BaseFeeFunc = func(context.Context) (int64, error) {
			return 2 * txnbuild.MinBaseFee, nil
		}

		b := builder.New(net)

		tx, err := b.Payment(context.Background(), mocks.GenericMerchant.Address, mocks.GenericCustomer.Address, mocks.GenericAsset, mocks.GenericAmount)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericMerchant.Address, tx.SourceAccount().AccountID)
		assert.EqualValues(t, 2*txnbuild.MinBaseFee, tx.BaseFee())

		require.Len(t, tx.Operations(), 1)
		payment, ok := tx.Operations()[0].(*txnbuild.Payment)
		require.True(t, ok)
		assert.Equal(t, mocks.GenericCustomer.Address, payment.Destination)
		assert.Equal(t, custody.FormatAmount(mocks.GenericAmount), payment.Amount)
		assert.Equal(t, mocks.GenericAsset.Code, payment.Asset.GetCode())
		assert.Equal(t, mocks.GenericAsset.Issuer, payment.Asset.GetIssuer())

		// The validity window keeps a resubmission after a timeout safe.
		assert.NotZero(t, tx.Timebounds().MaxTime)
	})

	t.Run("consumes the next sequence number", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.AccountFunc = func(_ context.Context, address string) (custody.LedgerAccount, error) {
			return custody.LedgerAccount{Address: address, Sequence: 41}, nil
		}

		b := builder.New(net)

		tx, err := b.Payment(context.Background(), mocks.GenericMerchant.Address, mocks.GenericCustomer.Address, mocks.GenericAsset, mocks.GenericAmount)

		require.NoError(t, err)
		assert.EqualValues(t, 42, tx.SequenceNumber())
	})

	t.Run("account load failure maps to ledger unavailable", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.AccountFunc = func(context.Context, string) (custody.LedgerAccount, error) {
			return custody.LedgerAccount{}, mocks.GenericError
		}

		b := builder.New(net)

		_, err := b.Payment(context.Background(), mocks.GenericMerchant.Address, mocks.GenericCustomer.Address, mocks.GenericAsset, mocks.GenericAmount)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerUnavailable{})
	})

	t.Run("account load timeout maps to ledger timeout", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.AccountFunc = func(context.Context, string) (custody.LedgerAccount, error) {
			return custody.LedgerAccount{}, fmt.Errorf("request failed: %w", context.DeadlineExceeded)
		}

		b := builder.New(net)

		_, err := b.Payment(context.Background(), mocks.GenericMerchant.Address, mocks.GenericCustomer.Address, mocks.GenericAsset, mocks.GenericAmount)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerTimeout{})
	})

	t.Run("handles base fee failure", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BaseFeeFunc = func(context.Context) (int64, error) {
			return 0, mocks.GenericError
		}

		b := builder.New(net)

		_, err := b.Payment(context.Background(), mocks.GenericMerchant.Address, mocks.GenericCustomer.Address, mocks.GenericAsset, mocks.GenericAmount)

		assert.Error(t, err)
	})
}

func TestBuilder_ChangeTrust(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		b := builder.New(mocks.BaselineNetwork(t))

		tx, err := b.ChangeTrust(context.Background(), mocks.GenericCustomer.Address, mocks.GenericAsset)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCustomer.Address, tx.SourceAccount().AccountID)

		require.Len(t, tx.Operations(), 1)
		changeTrust, ok := tx.Operations()[0].(*txnbuild.ChangeTrust)
		require.True(t, ok)
		assert.Equal(t, mocks.GenericAsset.Code, changeTrust.Line.GetCode())
		assert.Equal(t, mocks.GenericAsset.Issuer, changeTrust.Line.GetIssuer())
		assert.Equal(t, txnbuild.MaxTrustlineLimit, changeTrust.Limit)
	})

	t.Run("rejects native asset", func(t *testing.T) {
		t.Parallel()

		b := builder.New(mocks.BaselineNetwork(t))

		_, err := b.ChangeTrust(context.Background(), mocks.GenericCustomer.Address, custody.Asset{})

		assert.Error(t, err)
	})
}
