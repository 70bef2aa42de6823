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

package mocks

import (
	"testing"

	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

type Signer struct {
	SignFunc func(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error)
}

func BaselineSigner(t *testing.T) *Signer {
	t.Helper()

	s := Signer{
		SignFunc: func(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error) {
			return tx, nil
		},
	}

	return &s
}

func (s *Signer) Sign(tx *txnbuild.Transaction, account custody.Account) (*txnbuild.Transaction, error) {
	return s.SignFunc(tx, account)
}
