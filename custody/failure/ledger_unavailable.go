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

// LedgerUnavailable is the error for an account that could not be loaded from
// the ledger, most commonly because the account does not exist on the ledger
// yet or the ledger cannot be reached.
type LedgerUnavailable struct {
	Description Description
	Address     string
}

// Error implements the error interface.
func (l LedgerUnavailable) Error() string {
	return fmt.Sprintf("ledger unavailable (address: %s): %s", l.Address, l.Description)
}
