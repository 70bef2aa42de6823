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

// LedgerTimeout is the error for a ledger round trip that did not complete
// within its deadline. It is transient, but callers must not blindly retry a
// submission, since the original transaction may still settle; the bounded
// validity window and the account sequence number make a resubmission of the
// same transaction safe to attempt.
type LedgerTimeout struct {
	Description Description
	Operation   string
}

// Error implements the error interface.
func (l LedgerTimeout) Error() string {
	return fmt.Sprintf("ledger timeout (operation: %s): %s", l.Operation, l.Description)
}
