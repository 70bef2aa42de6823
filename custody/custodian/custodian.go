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

package custodian

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tocopay/toco-ledger/custody/failure"
	"github.com/tocopay/toco-ledger/models/custody"
)

// Provisioner represents the creation and funding of new ledger accounts.
type Provisioner interface {
	CreateAccount(ctx context.Context) (custody.Account, error)
}

// Oracle represents the balance reads for the user endpoint.
type Oracle interface {
	All(ctx context.Context, address string) ([]custody.Balance, error)
}

// Transferer represents the transfer orchestration.
type Transferer interface {
	Transfer(ctx context.Context, from custody.Account, to custody.Account, asset custody.Asset, amount int64) error
	Issue(ctx context.Context, issuer custody.Account, merchant custody.Account, asset custody.Asset, amount int64) error
}

// Custodian exposes the service operations to the API layer: user account
// creation, user lookup with live balances, token issuance and token
// transfers. All collaborators are injected once at process start.
type Custodian struct {
	log       zerolog.Logger
	dir       custody.Directory
	provision Provisioner
	oracle    Oracle
	transfer  Transferer
}

// New creates a new custodian with the given collaborators.
func New(log zerolog.Logger, dir custody.Directory, provision Provisioner, oracle Oracle, transfer Transferer) *Custodian {

	c := Custodian{
		log:       log.With().Str("component", "custodian").Logger(),
		dir:       dir,
		provision: provision,
		oracle:    oracle,
		transfer:  transfer,
	}

	return &c
}

// CreateUser provisions a funded ledger account for a new user, persists the
// user record and returns the new user ID.
func (c *Custodian) CreateUser(ctx context.Context) (string, error) {

	account, err := c.provision.CreateAccount(ctx)
	if err != nil {
		return "", fmt.Errorf("could not provision account: %w", err)
	}

	user := custody.User{
		ID:      uuid.NewString(),
		Account: account,
	}

	err = c.dir.SaveUser(user)
	if err != nil {
		return "", fmt.Errorf("could not save user: %w", err)
	}

	c.log.Info().Str("user", user.ID).Str("address", account.Address).Msg("user account created")

	return user.ID, nil
}

// User returns the user record along with the account's live balance list.
func (c *Custodian) User(ctx context.Context, userID string) (custody.User, []custody.Balance, error) {

	user, err := c.lookupUser(userID)
	if err != nil {
		return custody.User{}, nil, err
	}

	balances, err := c.oracle.All(ctx, user.Account.Address)
	if err != nil {
		return custody.User{}, nil, fmt.Errorf("could not read user balances: %w", err)
	}

	return user, balances, nil
}

// IssueToken issues the given amount of a new token to the user's account,
// paying it out of the issuer account, and records the token in the
// directory. The token exists on the ledger from the moment the issuer first
// pays it out.
func (c *Custodian) IssueToken(ctx context.Context, userID string, code string, amount int64) error {

	issuer, err := c.dir.Issuer()
	if err != nil {
		return fmt.Errorf("could not get issuer account: %w", err)
	}

	asset, err := custody.NewAsset(code, issuer.Address)
	if err != nil {
		return fmt.Errorf("invalid asset: %w", err)
	}

	user, err := c.lookupUser(userID)
	if err != nil {
		return err
	}

	err = c.transfer.Issue(ctx, issuer, user.Account, asset, amount)
	if err != nil {
		return fmt.Errorf("could not issue token: %w", err)
	}

	token := custody.Token{
		Asset:     asset,
		CreatorID: user.ID,
	}
	err = c.dir.SaveToken(token)
	if err != nil {
		return fmt.Errorf("could not save token: %w", err)
	}

	c.log.Info().Str("user", user.ID).Str("asset", asset.String()).Int64("amount", amount).Msg("token issued")

	return nil
}

// TransferToken transfers the given amount of a known token between two
// users' accounts. The amount is a scaled integer at seven fractional digits.
func (c *Custodian) TransferToken(ctx context.Context, fromID string, toID string, code string, amount int64) error {

	from, err := c.lookupUser(fromID)
	if err != nil {
		return err
	}

	to, err := c.lookupUser(toID)
	if err != nil {
		return err
	}

	token, err := c.dir.Token(code)
	if errors.Is(err, custody.ErrNotFound) {
		return failure.NotFound{
			Description: failure.NewDescription("token is not known to the directory"),
			Entity:      "token",
			ID:          code,
		}
	}
	if err != nil {
		return fmt.Errorf("could not get token: %w", err)
	}

	err = c.transfer.Transfer(ctx, from.Account, to.Account, token.Asset, amount)
	if err != nil {
		return fmt.Errorf("could not transfer token: %w", err)
	}

	c.log.Info().
		Str("from", from.ID).
		Str("to", to.ID).
		Str("asset", token.Asset.String()).
		Int64("amount", amount).
		Msg("token transferred")

	return nil
}

func (c *Custodian) lookupUser(userID string) (custody.User, error) {

	user, err := c.dir.User(userID)
	if errors.Is(err, custody.ErrNotFound) {
		return custody.User{}, failure.NotFound{
			Description: failure.NewDescription("user is not known to the directory"),
			Entity:      "user",
			ID:          userID,
		}
	}
	if err != nil {
		return custody.User{}, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}
