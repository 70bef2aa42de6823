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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tocopay/toco-ledger/models/custody"
)

func TestParseAmount(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		v, err := custody.ParseAmount("5.0000000")

		require.NoError(t, err)
		assert.Equal(t, int64(50_000_000), v)
	})

	t.Run("parses smallest representable amount", func(t *testing.T) {
		t.Parallel()

		v, err := custody.ParseAmount("0.0000001")

		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("parses largest representable amount", func(t *testing.T) {
		t.Parallel()

		v, err := custody.ParseAmount("922337203685.4775807")

		require.NoError(t, err)
		assert.Equal(t, custody.MaxIssuance, v)
	})

	t.Run("handles excess precision", func(t *testing.T) {
		t.Parallel()

		_, err := custody.ParseAmount("1.00000001")

		assert.Error(t, err)
	})

	t.Run("handles garbage input", func(t *testing.T) {
		t.Parallel()

		_, err := custody.ParseAmount("one coffee")

		assert.Error(t, err)
	})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5.0000000", custody.FormatAmount(50_000_000))
	assert.Equal(t, "0.0000001", custody.FormatAmount(1))
	assert.Equal(t, "922337203685.4775807", custody.FormatAmount(custody.MaxIssuance))

	// Amount arithmetic happens on the scaled integers, so a parse, subtract
	// and format cycle must not drift.
	a, err := custody.ParseAmount("10.0000000")
	require.NoError(t, err)
	b, err := custody.ParseAmount("5.0000000")
	require.NoError(t, err)
	assert.Equal(t, "5.0000000", custody.FormatAmount(a-b))
}
