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
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test custody components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericIssuer   = GenericAccount()
	GenericMerchant = GenericAccount()
	GenericCustomer = GenericAccount()

	GenericAsset = custody.Asset{
		Code:   "COFFEE",
		Issuer: GenericIssuer.Address,
	}

	// GenericAmount is five units at seven fractional digits.
	GenericAmount = int64(50_000_000)

	GenericTransaction = genericTransaction()
)

// GenericAccount returns a fresh account with a valid random keypair.
func GenericAccount() custody.Account {
	pair, err := keypair.Random()
	if err != nil {
		panic(err)
	}
	return custody.Account{
		Address: pair.Address(),
		Seed:    pair.Seed(),
	}
}

// GenericBalance returns a balance entry for the generic asset with the given
// amount.
func GenericBalance(amount int64) custody.Balance {
	return custody.Balance{
		Type:   "credit_alphanum12",
		Code:   GenericAsset.Code,
		Issuer: GenericAsset.Issuer,
		Amount: amount,
	}
}

func genericTransaction() *txnbuild.Transaction {
	source := txnbuild.SimpleAccount{
		AccountID: GenericIssuer.Address,
		Sequence:  42,
	}
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &source,
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: GenericMerchant.Address,
				Amount:      custody.FormatAmount(GenericAmount),
				Asset: txnbuild.CreditAsset{
					Code:   GenericAsset.Code,
					Issuer: GenericAsset.Issuer,
				},
			},
		},
		BaseFee: txnbuild.MinBaseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(30),
		},
	})
	if err != nil {
		panic(err)
	}
	return tx
}
