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

type Transferer struct {
	TransferFunc func(ctx context.Context, from custody.Account, to custody.Account, asset custody.Asset, amount int64) error
	IssueFunc    func(ctx context.Context, issuer custody.Account, merchant custody.Account, asset custody.Asset, amount int64) error
}

func BaselineTransferer(t *testing.T) *Transferer {
	t.Helper()

	tr := Transferer{
		TransferFunc: func(context.Context, custody.Account, custody.Account, custody.Asset, int64) error {
			return nil
		},
		IssueFunc: func(context.Context, custody.Account, custody.Account, custody.Asset, int64) error {
			return nil
		},
	}

	return &tr
}

func (t *Transferer) Transfer(ctx context.Context, from custody.Account, to custody.Account, asset custody.Asset, amount int64) error {
	return t.TransferFunc(ctx, from, to, asset, amount)
}

func (t *Transferer) Issue(ctx context.Context, issuer custody.Account, merchant custody.Account, asset custody.Asset, amount int64) error {
	return t.IssueFunc(ctx, issuer, merchant, asset, amount)
}
