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

package failure

import (
	"fmt"
)

// InsufficientBalance is the error for a transfer whose source account does
// not hold enough of the asset. It is an advisory pre-check failure; the
// ledger performs its own check at settlement time. Amounts are scaled
// integers at seven fractional digits.
type InsufficientBalance struct {
	Description Description
	Address     string
	Asset       string
	Have        int64
	Want        int64
}

// Error implements the error interface.
func (i InsufficientBalance) Error() string {
	return fmt.Sprintf("insufficient balance (address: %s, asset: %s, have: %d, want: %d): %s", i.Address, i.Asset, i.Have, i.Want, i.Description)
}
