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

// TrustEstablishmentFailed is the error for a trustline transaction that
// could not be submitted or was rejected by the ledger. It aborts the
// transfer it was part of.
type TrustEstablishmentFailed struct {
	Description Description
	Address     string
	Asset       string
}

// Error implements the error interface.
func (t TrustEstablishmentFailed) Error() string {
	return fmt.Sprintf("trust establishment failed (address: %s, asset: %s): %s", t.Address, t.Asset, t.Description)
}
