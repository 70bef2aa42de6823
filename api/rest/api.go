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

package rest

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/tocopay/toco-ledger/models/custody"
)

// Custodian represents the service operations exposed over the REST API.
type Custodian interface {
	CreateUser(ctx context.Context) (string, error)
	User(ctx context.Context, userID string) (custody.User, []custody.Balance, error)
	IssueToken(ctx context.Context, userID string, code string, amount int64) error
	TransferToken(ctx context.Context, fromID string, toID string, code string, amount int64) error
}

// API implements the REST API handlers on top of the custodian.
type API struct {
	custodian Custodian
	validate  *validator.Validate
}

// NewAPI creates a new REST API for the given custodian.
func NewAPI(custodian Custodian) *API {

	a := API{
		custodian: custodian,
		validate:  validator.New(),
	}

	return &a
}
