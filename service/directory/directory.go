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

package directory

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/tocopay/toco-ledger/models/custody"
)

// Codec encodes and decodes the records held in the directory database.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// Directory is the Badger-backed implementation of the ledger directory. It
// maps user identities to their custodial accounts and token codes to their
// descriptors, and holds the single issuer account record. Records are
// encoded through the injected codec.
type Directory struct {
	db    *badger.DB
	codec Codec
}

// New creates a new directory on top of the given Badger database.
func New(db *badger.DB, codec Codec) *Directory {

	d := Directory{
		db:    db,
		codec: codec,
	}

	return &d
}

// Bootstrap writes the issuer account record if none exists yet. It runs once
// at startup, before the directory is handed to any request-handling
// component, so reads never mutate the store. An already stored issuer takes
// precedence over the given one.
func (d *Directory) Bootstrap(issuer custody.Account) error {
	key := encodeKey(prefixIssuer)
	return d.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("could not check issuer record: %w", err)
		}
		data, err := d.codec.Marshal(issuer)
		if err != nil {
			return fmt.Errorf("could not encode issuer record: %w", err)
		}
		return txn.Set(key, data)
	})
}

// User returns the user record for the given ID.
func (d *Directory) User(id string) (custody.User, error) {
	var user custody.User
	err := d.retrieve(encodeKey(prefixUser, id), &user)
	if err != nil {
		return custody.User{}, err
	}
	return user, nil
}

// SaveUser writes the given user record.
func (d *Directory) SaveUser(user custody.User) error {
	return d.save(encodeKey(prefixUser, user.ID), user)
}

// Token returns the token record for the given asset code.
func (d *Directory) Token(code string) (custody.Token, error) {
	var token custody.Token
	err := d.retrieve(encodeKey(prefixToken, code), &token)
	if err != nil {
		return custody.Token{}, err
	}
	return token, nil
}

// SaveToken writes the given token record.
func (d *Directory) SaveToken(token custody.Token) error {
	return d.save(encodeKey(prefixToken, token.Asset.Code), token)
}

// Issuer returns the issuer account record.
func (d *Directory) Issuer() (custody.Account, error) {
	var issuer custody.Account
	err := d.retrieve(encodeKey(prefixIssuer), &issuer)
	if err != nil {
		return custody.Account{}, err
	}
	return issuer, nil
}

func (d *Directory) save(key []byte, value interface{}) error {
	data, err := d.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode record: %w", err)
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

func (d *Directory) retrieve(key []byte, value interface{}) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return custody.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("could not retrieve record: %w", err)
		}
		return item.Value(func(data []byte) error {
			return d.codec.Unmarshal(data, value)
		})
	})
}
