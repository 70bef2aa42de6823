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

	"github.com/tocopay/toco-ledger/models/custody"
)

type Directory struct {
	UserFunc      func(id string) (custody.User, error)
	SaveUserFunc  func(user custody.User) error
	TokenFunc     func(code string) (custody.Token, error)
	SaveTokenFunc func(token custody.Token) error
	IssuerFunc    func() (custody.Account, error)
}

func BaselineDirectory(t *testing.T) *Directory {
	t.Helper()

	d := Directory{
		UserFunc: func(id string) (custody.User, error) {
			return custody.User{ID: id, Account: GenericMerchant}, nil
		},
		SaveUserFunc: func(custody.User) error {
			return nil
		},
		TokenFunc: func(code string) (custody.Token, error) {
			return custody.Token{Asset: GenericAsset, CreatorID: "creator"}, nil
		},
		SaveTokenFunc: func(custody.Token) error {
			return nil
		},
		IssuerFunc: func() (custody.Account, error) {
			return GenericIssuer, nil
		},
	}

	return &d
}

func (d *Directory) User(id string) (custody.User, error) {
	return d.UserFunc(id)
}

func (d *Directory) SaveUser(user custody.User) error {
	return d.SaveUserFunc(user)
}

func (d *Directory) Token(code string) (custody.Token, error) {
	return d.TokenFunc(code)
}

func (d *Directory) SaveToken(token custody.Token) error {
	return d.SaveTokenFunc(token)
}

func (d *Directory) Issuer() (custody.Account, error) {
	return d.IssuerFunc()
}
