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

type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required,alphanum,max=12"`
	Amount string `json:"amount" validate:"omitempty"`
}

type TransferTokenRequest struct {
	FromID string `json:"from_id" validate:"required"`
	ToID   string `json:"to_id" validate:"required"`
	Code   string `json:"code" validate:"required,alphanum,max=12"`
	Amount string `json:"amount" validate:"required"`
}

// IssueToken issues a token to the requesting user's account. When no amount
// is given, the full maximum representable supply is issued, which mirrors
// the single-issuance-per-merchant model.
func (a *API) IssueToken(ctx echo.Context) error {

	var req IssueTokenRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err = a.validate.Struct(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount := custody.MaxIssuance
	if req.Amount != "" {
		amount, err = custody.ParseAmount(req.Amount)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	err = a.custodian.IssueToken(ctx.Request().Context(), req.UserID, req.Code, amount)
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransferToken transfers an amount of a known token between two users.
func (a *API) TransferToken(ctx echo.Context) error {

	var req TransferTokenRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err = a.validate.Struct(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount, err := custody.ParseAmount(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = a.custodian.TransferToken(ctx.Request().Context(), req.FromID, req.ToID, req.Code, amount)
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
