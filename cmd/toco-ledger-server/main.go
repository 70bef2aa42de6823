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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/stellar/go/keypair"

	"github.com/tocopay/toco-ledger/api/rest"
	"github.com/tocopay/toco-ledger/codec/zbor"
	"github.com/tocopay/toco-ledger/custody/builder"
	"github.com/tocopay/toco-ledger/custody/custodian"
	"github.com/tocopay/toco-ledger/custody/oracle"
	"github.com/tocopay/toco-ledger/custody/provision"
	"github.com/tocopay/toco-ledger/custody/transfer"
	"github.com/tocopay/toco-ledger/custody/trust"
	"github.com/tocopay/toco-ledger/models/custody"
	"github.com/tocopay/toco-ledger/service/directory"
	"github.com/tocopay/toco-ledger/service/frontier"
	"github.com/tocopay/toco-ledger/service/signer"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagChain  string
		flagData   string
		flagIssuer string
		flagLevel  string
		flagPort   uint16
	)

	pflag.StringVarP(&flagChain, "chain", "c", custody.DigitalBitsTestnet.String(), "chain ID of the DigitalBits network to use")
	pflag.StringVarP(&flagData, "data", "d", "data", "directory for the ledger directory database")
	pflag.StringVarP(&flagIssuer, "issuer", "i", "", "seed of the issuer account; a fresh funded account is provisioned when empty")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to serve the token API on")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Check if the configured chain ID is valid.
	params, ok := custody.ChainParams[custody.ChainID(flagChain)]
	if !ok {
		log.Error().Str("chain", flagChain).Msg("invalid chain ID for params")
		return failure
	}

	// Open the directory database and initialize the directory.
	db, err := badger.Open(custody.DefaultOptions(flagData))
	if err != nil {
		log.Error().Str("data", flagData).Err(err).Msg("could not open directory database")
		return failure
	}
	defer func() {
		err := db.Close()
		if err != nil {
			log.Error().Err(err).Msg("could not close directory database")
		}
	}()

	codec := zbor.NewCodec()
	dir := directory.New(db, codec)

	// Initialize the ledger network collaborators and the custody components.
	client := frontier.New(params)
	sign := signer.New(params.Passphrase)
	read := oracle.New(client)
	build := builder.New(client)
	establish := trust.New(read, build, sign, client)
	move := transfer.New(read, establish, build, sign, client)
	create := provision.New(client)

	// Make sure the issuer account record exists before the directory is
	// handed to any request-handling component.
	err = bootstrapIssuer(dir, create, flagIssuer)
	if err != nil {
		log.Error().Err(err).Msg("could not bootstrap issuer account")
		return failure
	}

	cust := custodian.New(log, dir, create, read, move)

	// Token API initialization.
	api := rest.NewAPI(cust)
	srv := echo.New()
	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger = elog
	srv.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	srv.POST("/users", api.CreateUser)
	srv.GET("/users/:id", api.GetUser)
	srv.POST("/tokens", api.IssueToken)
	srv.POST("/tokens/transfer", api.TransferToken)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("chain", params.ChainID.String()).Msg("Toco ledger server starting")
		err := srv.Start(fmt.Sprintf(":%d", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Toco ledger server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Toco ledger server stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("Toco ledger server stopping")
	case <-done:
		log.Info().Msg("Toco ledger server done")
	case <-failed:
		log.Warn().Msg("Toco ledger server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	var errs *multierror.Error
	err = srv.Shutdown(ctx)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("could not shut down token API: %w", err))
	}
	err = errs.ErrorOrNil()
	if err != nil {
		log.Error().Err(err).Msg("Toco ledger server shutdown failed")
		return failure
	}

	return success
}

// bootstrapIssuer makes sure the directory holds an issuer account record. A
// configured seed takes precedence; otherwise a fresh funded account is
// provisioned. An issuer already stored in the directory is never replaced.
func bootstrapIssuer(dir *directory.Directory, create *provision.Provisioner, seed string) error {

	_, err := dir.Issuer()
	if err == nil {
		return nil
	}
	if !errors.Is(err, custody.ErrNotFound) {
		return fmt.Errorf("could not check issuer record: %w", err)
	}

	var issuer custody.Account
	if seed != "" {
		pair, err := keypair.ParseFull(seed)
		if err != nil {
			return fmt.Errorf("could not parse issuer seed: %w", err)
		}
		issuer = custody.Account{
			Address: pair.Address(),
			Seed:    pair.Seed(),
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), frontier.DefaultTimeout)
		defer cancel()
		issuer, err = create.CreateAccount(ctx)
		if err != nil {
			return fmt.Errorf("could not provision issuer account: %w", err)
		}
	}

	err = dir.Bootstrap(issuer)
	if err != nil {
		return fmt.Errorf("could not store issuer record: %w", err)
	}

	return nil
}
