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

package custody

import (
	"fmt"
	"math"

	"github.com/stellar/go/amount"
)

// MaxIssuance is the largest amount an issuer can pay out in a single
// issuance, which is the largest representable amount on the ledger. The
// issuer itself has unlimited supply, so this bounds a single payment, not
// the total amount in circulation.
const MaxIssuance = int64(math.MaxInt64)

// ParseAmount converts a decimal amount string into the scaled integer
// representation used for all arithmetic and comparisons. The ledger uses
// seven fractional digits, so one unit of an asset corresponds to a scaled
// value of 10^7. Amounts with more precision than the ledger supports are
// rejected rather than rounded.
func ParseAmount(text string) (int64, error) {

	v, err := amount.ParseInt64(text)
	if err != nil {
		return 0, fmt.Errorf("could not parse amount (amount: %s): %w", text, err)
	}

	return v, nil
}

// FormatAmount converts a scaled integer amount back into the decimal string
// representation expected by the ledger, always with seven fractional digits.
func FormatAmount(v int64) string {
	return amount.StringFromInt64(v)
}
