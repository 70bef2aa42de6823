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
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tocopay/toco-ledger/custody/failure"
)

// apiError maps the custody failure taxonomy onto HTTP status codes. The
// failure types survive wrapping, so the mapping holds regardless of how much
// context the layers above added.
func apiError(err error) *echo.HTTPError {

	var nfErr failure.NotFound
	if errors.As(err, &nfErr) {
		return echo.NewHTTPError(http.StatusNotFound, nfErr.Error())
	}

	var ibErr failure.InsufficientBalance
	if errors.As(err, &ibErr) {
		return echo.NewHTTPError(http.StatusConflict, ibErr.Error())
	}

	var ltErr failure.LedgerTimeout
	if errors.As(err, &ltErr) {
		return echo.NewHTTPError(http.StatusGatewayTimeout, ltErr.Error())
	}

	var luErr failure.LedgerUnavailable
	if errors.As(err, &luErr) {
		return echo.NewHTTPError(http.StatusBadGateway, luErr.Error())
	}

	var teErr failure.TrustEstablishmentFailed
	if errors.As(err, &teErr) {
		return echo.NewHTTPError(http.StatusBadGateway, teErr.Error())
	}

	var tsErr failure.TransferSubmissionFailed
	if errors.As(err, &tsErr) {
		return echo.NewHTTPError(http.StatusBadGateway, tsErr.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
