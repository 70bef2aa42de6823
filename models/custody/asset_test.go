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

package custody_test

import (
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tocopay/toco-ledger/models/custody"
)

func TestNewAsset(t *testing.T) {
	issuer := keypair.MustRandom().Address()

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		asset, err := custody.NewAsset("COFFEE", issuer)

		require.NoError(t, err)
		assert.Equal(t, "COFFEE", asset.Code)
		assert.Equal(t, issuer, asset.Issuer)
		assert.False(t, asset.IsNative())
	})

	t.Run("handles empty code", func(t *testing.T) {
		t.Parallel()

		_, err := custody.NewAsset("", issuer)

		assert.Error(t, err)
	})

	t.Run("handles code above length limit", func(t *testing.T) {
		t.Parallel()

		_, err := custody.NewAsset("COFFEECOFFEEC", issuer)

		assert.Error(t, err)
	})

	t.Run("handles non-alphanumeric code", func(t *testing.T) {
		t.Parallel()

		_, err := custody.NewAsset("COF-FEE", issuer)

		assert.Error(t, err)
	})

	t.Run("handles invalid issuer address", func(t *testing.T) {
		t.Parallel()

		_, err := custody.NewAsset("COFFEE", "not-an-address")

		assert.Error(t, err)
	})
}

func TestAsset_Equality(t *testing.T) {
	t.Parallel()

	issuer := keypair.MustRandom().Address()
	other := keypair.MustRandom().Address()

	a1 := custody.Asset{Code: "COFFEE", Issuer: issuer}
	a2 := custody.Asset{Code: "COFFEE", Issuer: issuer}
	a3 := custody.Asset{Code: "COFFEE", Issuer: other}
	a4 := custody.Asset{Code: "TEA", Issuer: issuer}

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, a3)
	assert.NotEqual(t, a1, a4)
}

func TestBalance_Matches(t *testing.T) {
	t.Parallel()

	issuer := keypair.MustRandom().Address()
	asset := custody.Asset{Code: "COFFEE", Issuer: issuer}

	matching := custody.Balance{Type: "credit_alphanum12", Code: "COFFEE", Issuer: issuer}
	wrongCode := custody.Balance{Type: "credit_alphanum4", Code: "TEA", Issuer: issuer}
	native := custody.Balance{Type: "native"}

	assert.True(t, matching.Matches(asset))
	assert.False(t, wrongCode.Matches(asset))
	assert.False(t, native.Matches(asset))

	assert.True(t, native.Matches(custody.Asset{}))
	assert.False(t, matching.Matches(custody.Asset{}))
}
