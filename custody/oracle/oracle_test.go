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

package oracle_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/custody/oracle"
	"github.com/tocopay/toco-ledger/models/custody"
	"github.com/tocopay/toco-ledger/testing/mocks"
)

func TestOracle_Balance(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{
				{Type: "native", Amount: 100},
				mocks.GenericBalance(42),
			}, nil
		}

		o := oracle.New(net)

		balance, found, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, mocks.GenericAsset)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(42), balance.Amount)
	})

	t.Run("native asset matches native entry", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{
				{Type: "native", Amount: 100},
				mocks.GenericBalance(42),
			}, nil
		}

		o := oracle.New(net)

		balance, found, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, custody.Asset{})

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(100), balance.Amount)
	})

	t.Run("missing entry is absent, not an error", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{{Type: "native", Amount: 100}}, nil
		}

		o := oracle.New(net)

		_, found, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, mocks.GenericAsset)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("zero balance entry still counts as present", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{mocks.GenericBalance(0)}, nil
		}

		o := oracle.New(net)

		balance, found, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, mocks.GenericAsset)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(0), balance.Amount)
	})

	t.Run("handles unavailable ledger", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return nil, mocks.GenericError
		}

		o := oracle.New(net)

		_, _, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, mocks.GenericAsset)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerUnavailable{})
	})

	t.Run("handles ledger timeout", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return nil, fmt.Errorf("request failed: %w", context.DeadlineExceeded)
		}

		o := oracle.New(net)

		_, _, err := o.Balance(context.Background(), mocks.GenericMerchant.Address, mocks.GenericAsset)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerTimeout{})
	})
}

func TestOracle_All(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)

		o := oracle.New(net)

		balances, err := o.All(context.Background(), mocks.GenericMerchant.Address)

		require.NoError(t, err)
		assert.Len(t, balances, 1)
	})

	t.Run("handles unavailable ledger", func(t *testing.T) {
		t.Parallel()

		net := mocks.BaselineNetwork(t)
		net.BalancesFunc = func(context.Context, string) ([]custody.Balance, error) {
			return nil, mocks.GenericError
		}

		o := oracle.New(net)

		_, err := o.All(context.Background(), mocks.GenericMerchant.Address)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerUnavailable{})
	})
}
