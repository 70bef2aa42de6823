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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tocopay/toco-ledger/models/custody"
)

type CreateUserResponse struct {
	ID string `json:"id"`
}

type UserResponse struct {
	ID       string            `json:"id"`
	Address  string            `json:"address"`
	Balances []BalanceResponse `json:"balances"`
}

type BalanceResponse struct {
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`
	Amount string `json:"balance"`
}

// CreateUser provisions a new funded ledger account and returns the ID of the
// newly created user.
func (a *API) CreateUser(ctx echo.Context) error {

	userID, err := a.custodian.CreateUser(ctx.Request().Context())
	if err != nil {
		return apiError(err)
	}

	res := CreateUserResponse{
		ID: userID,
	}

	return ctx.JSON(http.StatusCreated, res)
}

// GetUser returns the user record along with the account's current balances.
func (a *API) GetUser(ctx echo.Context) error {

	userID := ctx.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user ID missing")
	}

	user, balances, err := a.custodian.User(ctx.Request().Context(), userID)
	if err != nil {
		return apiError(err)
	}

	res := UserResponse{
		ID:       user.ID,
		Address:  user.Account.Address,
		Balances: make([]BalanceResponse, 0, len(balances)),
	}
	for _, balance := range balances {
		res.Balances = append(res.Balances, BalanceResponse{
			Type:   balance.Type,
			Code:   balance.Code,
			Issuer: balance.Issuer,
			Amount: custody.FormatAmount(balance.Amount),
		})
	}

	return ctx.JSON(http.StatusOK, res)
}
