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

package signer

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

// Signer authorizes transactions with account credentials. It is the only
// component that parses account seeds; everything else treats the credential
// as opaque.
type Signer struct {
	passphrase string
}

// New creates a new signer for the network with the given passphrase.
func New(passphrase string) *Signer {

	s := Signer{
		passphrase: passphrase,
	}

	return &s
}

// Sign returns the given transaction signed with the account's credential.
func (s *Signer) Sign(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error) {

	pair, err := keypair.ParseFull(account.Seed)
	if err != nil {
		return nil, fmt.Errorf("could not parse signing credential (address: %s): %w", account.Address, err)
	}

	signed, err := tx.Sign(s.passphrase, pair)
	if err != nil {
		return nil, fmt.Errorf("could not sign transaction: %w", err)
	}

	return signed, nil
}
