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

// Balance is a read-only snapshot of one entry in an account's balance list.
// The presence of an entry for an asset, even with a zero amount, means the
// account holds a trustline for that asset. Amounts are scaled integers at
// seven fractional digits.
type Balance struct {
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`
	Amount int64  `json:"amount"`
}

// Matches returns true if the balance entry is for the given asset. A native
// asset request matches the native balance entry regardless of code or issuer.
func (b Balance) Matches(asset Asset) bool {
	if asset.IsNative() {
		return b.Type == "native"
	}
	return b.Code == asset.Code && b.Issuer == asset.Issuer
}
