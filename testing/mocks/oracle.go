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

type Oracle struct {
	BalanceFunc func(ctx context.Context, address string, asset custody.Asset) (custody.Balance, bool, error)
	AllFunc     func(ctx context.Context, address string) ([]custody.Balance, error)
}

func BaselineOracle(t *testing.T) *Oracle {
	t.Helper()

	o := Oracle{
		BalanceFunc: func(context.Context, string, custody.Asset) (custody.Balance, bool, error) {
			return GenericBalance(GenericAmount), true, nil
		},
		AllFunc: func(context.Context, string) ([]custody.Balance, error) {
			return []custody.Balance{GenericBalance(GenericAmount)}, nil
		},
	}

	return &o
}

func (o *Oracle) Balance(ctx context.Context, address string, asset custody.Asset) (custody.Balance, bool, error) {
	return o.BalanceFunc(ctx, address, asset)
}

func (o *Oracle) All(ctx context.Context, address string) ([]custody.Balance, error) {
	return o.AllFunc(ctx, address)
}
