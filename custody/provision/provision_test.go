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

package provision_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/custody/provision"
	"github.com/tocopay/toco-ledger/testing/mocks"
)

func TestProvisioner_CreateAccount(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var funded string
		funder := mocks.BaselineNetwork(t)
		funder.FundFunc = func(_ context.Context, address string) error {
			funded = address
			return nil
		}

		p := provision.New(funder)

		account, err := p.CreateAccount(context.Background())

		require.NoError(t, err)
		assert.Equal(t, account.Address, funded)
		assert.True(t, strkey.IsValidEd25519PublicKey(account.Address))
		assert.NotEmpty(t, account.Seed)
	})

	t.Run("generates distinct accounts", func(t *testing.T) {
		t.Parallel()

		p := provision.New(mocks.BaselineNetwork(t))

		first, err := p.CreateAccount(context.Background())
		require.NoError(t, err)
		second, err := p.CreateAccount(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, first.Address, second.Address)
	})

	t.Run("handles funder failure", func(t *testing.T) {
		t.Parallel()

		funder := mocks.BaselineNetwork(t)
		funder.FundFunc = func(context.Context, string) error {
			return mocks.GenericError
		}

		p := provision.New(funder)

		_, err := p.CreateAccount(context.Background())

		assert.Error(t, err)
	})

	t.Run("surfaces funding timeout distinctly", func(t *testing.T) {
		t.Parallel()

		funder := mocks.BaselineNetwork(t)
		funder.FundFunc = func(context.Context, string) error {
			return fmt.Errorf("request failed: %w", context.DeadlineExceeded)
		}

		p := provision.New(funder)

		_, err := p.CreateAccount(context.Background())

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.LedgerTimeout{})
	})
}
