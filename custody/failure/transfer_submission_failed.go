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

// TransferSubmissionFailed is the error for a payment transaction that the
// ledger rejected or that could not be submitted. The description carries the
// rejection payload reported by the ledger for diagnostics. If the trustline
// for the destination was established as part of the same transfer, it
// remains in place, so a later retry skips that step.
type TransferSubmissionFailed struct {
	Description Description
	FromAddress string
	ToAddress   string
	Asset       string
}

// Error implements the error interface.
func (t TransferSubmissionFailed) Error() string {
	return fmt.Sprintf("transfer submission failed (from: %s, to: %s, asset: %s): %s", t.FromAddress, t.ToAddress, t.Asset, t.Description)
}
