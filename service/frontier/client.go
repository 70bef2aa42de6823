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

package frontier

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/txnbuild"

	"github.com/tocopay/toco-ledger/models/custody"
)

// DefaultTimeout bounds every Frontier round trip.
const DefaultTimeout = 10 * time.Second

// Client talks to a Frontier instance, the Horizon-compatible API of a
// DigitalBits network. It implements the narrow network interfaces declared
// by the custody packages: account and balance reads, base fee retrieval,
// transaction submission and friendbot funding.
type Client struct {
	frontier  *horizonclient.Client
	friendbot string
	http      *http.Client
}

// New creates a new Frontier client for the network described by the given
// chain parameters.
func New(params custody.Params) *Client {

	web := http.Client{
		Timeout: DefaultTimeout,
	}

	frontier := horizonclient.Client{
		HorizonURL: params.FrontierURL,
		HTTP:       &web,
	}
	frontier.SetHorizonTimeout(DefaultTimeout)

	c := Client{
		frontier:  &frontier,
		friendbot: params.FriendbotURL,
		http:      &web,
	}

	return &c
}

// Account returns the on-ledger view of the account with the given address,
// as needed for transaction construction.
func (c *Client) Account(ctx context.Context, address string) (custody.LedgerAccount, error) {

	if err := ctx.Err(); err != nil {
		return custody.LedgerAccount{}, err
	}

	account, err := c.frontier.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return custody.LedgerAccount{}, convertError(err, "could not load account")
	}

	sequence, err := account.GetSequenceNumber()
	if err != nil {
		return custody.LedgerAccount{}, fmt.Errorf("could not get sequence number: %w", err)
	}

	ledgerAccount := custody.LedgerAccount{
		Address:  account.AccountID,
		Sequence: sequence,
	}

	return ledgerAccount, nil
}

// Balances returns the full balance list of the account with the given
// address, with amounts converted to scaled integers.
func (c *Client) Balances(ctx context.Context, address string) ([]custody.Balance, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	account, err := c.frontier.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return nil, convertError(err, "could not load account")
	}

	balances := make([]custody.Balance, 0, len(account.Balances))
	for _, entry := range account.Balances {
		amount, err := custody.ParseAmount(entry.Balance)
		if err != nil {
			return nil, fmt.Errorf("could not parse balance amount: %w", err)
		}
		balance := custody.Balance{
			Type:   entry.Type,
			Code:   entry.Code,
			Issuer: entry.Issuer,
			Amount: amount,
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// BaseFee returns the base fee currently charged by the network.
func (c *Client) BaseFee(ctx context.Context) (int64, error) {

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stats, err := c.frontier.FeeStats()
	if err != nil {
		return 0, convertError(err, "could not fetch fee stats")
	}

	fee := stats.LastLedgerBaseFee
	if fee < txnbuild.MinBaseFee {
		fee = txnbuild.MinBaseFee
	}

	return fee, nil
}

// Submit sends the signed transaction to the network. On rejection, the
// result codes reported by the ledger are included in the returned error.
func (c *Client) Submit(ctx context.Context, tx *txnbuild.Transaction) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := c.frontier.SubmitTransaction(tx)
	if err == nil {
		return nil
	}

	hzErr := horizonclient.GetError(err)
	if hzErr != nil {
		codes, cErr := hzErr.ResultCodes()
		if cErr == nil {
			return fmt.Errorf("transaction rejected (transaction: %s, operations: %s): %w",
				codes.TransactionCode, strings.Join(codes.OperationCodes, ","), err)
		}
	}

	return convertError(err, "could not submit transaction")
}

// Fund asks the network's friendbot to create and minimally fund the account
// with the given address.
func (c *Client) Fund(ctx context.Context, address string) error {

	if c.friendbot == "" {
		return fmt.Errorf("network has no friendbot for account funding")
	}

	target := fmt.Sprintf("%s?addr=%s", c.friendbot, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("could not create funding request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return convertError(err, "could not execute funding request")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("funding request failed (status: %d)", res.StatusCode)
	}

	return nil
}

// convertError maps transport-level timeouts onto the context deadline error
// so that callers can distinguish transient timeouts from hard failures.
func convertError(err error, msg string) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w", msg, context.DeadlineExceeded)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
