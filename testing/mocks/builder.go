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

	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

type Builder struct {
	PaymentFunc     func(ctx context.Context, source string, destination string, asset custody.Asset, amount int64) (*txnbuild.Transaction, error)
	ChangeTrustFunc func(ctx context.Context, source string, asset custody.Asset) (*txnbuild.Transaction, error)
}

func BaselineBuilder(t *testing.T) *Builder {
	t.Helper()

	b := Builder{
		PaymentFunc: func(context.Context, string, string, custody.Asset, int64) (*txnbuild.Transaction, error) {
			return GenericTransaction, nil
		},
		ChangeTrustFunc: func(context.Context, string, custody.Asset) (*txnbuild.Transaction, error) {
			return GenericTransaction, nil
		},
	}

	return &b
}

func (b *Builder) Payment(ctx context.Context, source string, destination string, asset custody.Asset, amount int64) (*txnbuild.Transaction, error) {
	return b.PaymentFunc(ctx, source, destination, asset, amount)
}

func (b *Builder) ChangeTrust(ctx context.Context, source string, asset custody.Asset) (*txnbuild.Transaction, error) {
	return b.ChangeTrustFunc(ctx, source, asset)
}
