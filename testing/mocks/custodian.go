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

type Custodian struct {
	CreateUserFunc    func(ctx context.Context) (string, error)
	UserFunc          func(ctx context.Context, userID string) (custody.User, []custody.Balance, error)
	IssueTokenFunc    func(ctx context.Context, userID string, code string, amount int64) error
	TransferTokenFunc func(ctx context.Context, fromID string, toID string, code string, amount int64) error
}

func BaselineCustodian(t *testing.T) *Custodian {
	t.Helper()

	c := Custodian{
		CreateUserFunc: func(context.Context) (string, error) {
			return "user", nil
		},
		UserFunc: func(ctx context.Context, userID string) (custody.User, []custody.Balance, error) {
			user := custody.User{ID: userID, Account: GenericMerchant}
			return user, []custody.Balance{GenericBalance(GenericAmount)}, nil
		},
		IssueTokenFunc: func(context.Context, string, string, int64) error {
			return nil
		},
		TransferTokenFunc: func(context.Context, string, string, string, int64) error {
			return nil
		},
	}

	return &c
}

func (c *Custodian) CreateUser(ctx context.Context) (string, error) {
	return c.CreateUserFunc(ctx)
}

func (c *Custodian) User(ctx context.Context, userID string) (custody.User, []custody.Balance, error) {
	return c.UserFunc(ctx, userID)
}

func (c *Custodian) IssueToken(ctx context.Context, userID string, code string, amount int64) error {
	return c.IssueTokenFunc(ctx, userID, code, amount)
}

func (c *Custodian) TransferToken(ctx context.Context, fromID string, toID string, code string, amount int64) error {
	return c.TransferTokenFunc(ctx, fromID, toID, code, amount)
}
