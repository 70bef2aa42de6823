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
	"context"
	"testing"

	"github.com/tocopay/toco-ledger/models/custody"
)

type Provisioner struct {
	CreateAccountFunc func(ctx context.Context) (custody.Account, error)
}

func BaselineProvisioner(t *testing.T) *Provisioner {
	t.Helper()

	p := Provisioner{
		CreateAccountFunc: func(context.Context) (custody.Account, error) {
			return GenericCustomer, nil
		},
	}

	return &p
}

func (p *Provisioner) CreateAccount(ctx context.Context) (custody.Account, error) {
	return p.CreateAccountFunc(ctx)
}
