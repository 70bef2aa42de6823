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

	"github.com/stellar/go/strkey"
)

// The ledger limits asset codes to twelve alphanumeric characters.
const maxCodeLength = 12

// Asset identifies a fungible token by its code and the account that issues
// it. Two assets are the same if and only if both fields match. The zero
// value identifies the native ledger asset.
type Asset struct {
	Code   string `json:"code"`
	Issuer string `json:"issuer"`
}

// NewAsset validates the given code and issuer address and builds the asset
// identity from them.
func NewAsset(code string, issuer string) (Asset, error) {

	if len(code) == 0 || len(code) > maxCodeLength {
		return Asset{}, fmt.Errorf("invalid asset code length (code: %s, have: %d, want: 1-%d)", code, len(code), maxCodeLength)
	}
	for _, r := range code {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !alpha && !digit {
			return Asset{}, fmt.Errorf("invalid character in asset code (code: %s)", code)
		}
	}

	if !strkey.IsValidEd25519PublicKey(issuer) {
		return Asset{}, fmt.Errorf("invalid issuer address (issuer: %s)", issuer)
	}

	asset := Asset{
		Code:   code,
		Issuer: issuer,
	}

	return asset, nil
}

// IsNative returns true if the asset identifies the native ledger asset.
func (a Asset) IsNative() bool {
	return a.Code == "" && a.Issuer == ""
}

func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return fmt.Sprintf("%s:%s", a.Code, a.Issuer)
}
