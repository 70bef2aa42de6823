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

// Account is a ledger identity. The seed is the sole credential authorizing
// outgoing operations for the account and must never leave the process; only
// the signer collaborator is allowed to parse it.
type Account struct {
	Address string `cbor:"address" json:"address"`
	Seed    string `cbor:"seed" json:"-"`
}

// User maps a directory identity to the ledger account held in custody for it.
type User struct {
	ID      string  `json:"id"`
	Account Account `json:"account"`
}

// Token is the directory record for an issued asset, remembering which user
// requested its issuance.
type Token struct {
	Asset     Asset  `json:"asset"`
	CreatorID string `json:"creator_id"`
}

// LedgerAccount is the on-ledger view of an account as needed for transaction
// construction, most importantly its current sequence number.
type LedgerAccount struct {
	Address  string
	Sequence int64
}
