// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package basket

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/internal/metrics"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/assertions"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-basket-sdk/pkg/reconcile"
	"github.com/hyperledger/firefly-basket-sdk/pkg/schema"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Client is the entry point for building, validating and submitting basket
// transactions, and for reconciling the outcome of batch trades.
//
// Every operation validates all of its inputs before the connector is called,
// and returns an *apitypes.ValidationError without any network activity when
// an input is invalid.
type Client interface {
	ChainID() int64

	CreateSetToken(ctx context.Context, components []string, units []*big.Int, modules []string, manager, name, symbol, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	Issue(ctx context.Context, setToken string, quantity *big.Int, to, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	Redeem(ctx context.Context, setToken string, quantity *big.Int, to, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	UpdateStreamingFee(ctx context.Context, setToken string, newFeePercentage *big.Int, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	AccrueFee(ctx context.Context, setToken, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	Trade(ctx context.Context, setToken string, trade *apitypes.TradeInstruction, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)
	BatchTrade(ctx context.Context, setToken string, trades []*apitypes.TradeInstruction, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error)

	// ReconcileBatchTrade fetches the receipt of a batch trade transaction and returns
	// one outcome per submitted trade, in submission order. A nil decoder uses
	// reconcile.RevertStringDecoder.
	ReconcileBatchTrade(ctx context.Context, txHash string, trades []*apitypes.TradeInstruction, decoder reconcile.ErrorDecoder) ([]*apitypes.OutcomeRecord, error)
}

type client struct {
	connector       ffcapi.API
	assert          *assertions.Assertions
	metrics         metrics.Metrics
	reconciler      reconcile.Reconciler
	gasOracle       *gasOracle
	chainID         int64
	defaultFrom     string
	defaultGasLimit *big.Int
	maxBatchSize    int
	maxStreamingFee *big.Int
	contracts       map[config.RootKey]string
}

var contractKeys = []config.RootKey{
	bsconfig.ContractsSetTokenCreator,
	bsconfig.ContractsBasicIssuanceModule,
	bsconfig.ContractsStreamingFeeModule,
	bsconfig.ContractsTradeModule,
	bsconfig.ContractsBatchTradeExtension,
}

// NewClientFromConfig connects to the connector configured in the "connector" section
func NewClientFromConfig(ctx context.Context) (Client, error) {
	connector, err := ffcapi.NewConnectorClient(ctx, bsconfig.ConnectorConfig, ffcapi.VariantEVM)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, connector)
}

func NewClient(ctx context.Context, connector ffcapi.API) (Client, error) {
	c := &client{
		connector:       connector,
		metrics:         metrics.NewMetricsManager(ctx),
		chainID:         config.GetInt64(bsconfig.ChainID),
		defaultFrom:     config.GetString(bsconfig.TransactionsDefaultFrom),
		defaultGasLimit: big.NewInt(config.GetInt64(bsconfig.TransactionsDefaultGasLimit)),
		maxBatchSize:    config.GetInt(bsconfig.TransactionsMaxBatchSize),
		contracts:       make(map[config.RootKey]string),
	}

	supportedIDs := config.GetStringSlice(bsconfig.ChainSupportedIDs)
	supported := make([]int64, 0, len(supportedIDs))
	for _, s := range supportedIDs {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, bsmsgs.MsgInvalidWholeNumber, bsconfig.ChainSupportedIDs, s)
		}
		supported = append(supported, id)
	}
	c.assert = assertions.New(schema.NewValidator(schema.Builtin()), supported)

	maxFee := config.GetString(bsconfig.FeesMaxStreamingFeePercentage)
	var ok bool
	if c.maxStreamingFee, ok = new(big.Int).SetString(maxFee, 10); !ok {
		return nil, i18n.NewError(ctx, bsmsgs.MsgInvalidNumber, bsconfig.FeesMaxStreamingFeePercentage, maxFee)
	}

	checks := []error{
		c.assert.IsSupportedChainID(ctx, string(bsconfig.ChainID), c.chainID),
		c.assert.IsGreaterThan(ctx, string(bsconfig.TransactionsDefaultGasLimit), c.defaultGasLimit, big.NewInt(0)),
		c.assert.IsGreaterThan(ctx, string(bsconfig.TransactionsMaxBatchSize), big.NewInt(int64(c.maxBatchSize)), big.NewInt(0)),
	}
	if c.defaultFrom != "" {
		checks = append(checks, c.assert.IsValidAddress(ctx, string(bsconfig.TransactionsDefaultFrom), c.defaultFrom))
	}
	for _, key := range contractKeys {
		if address := config.GetString(key); address != "" {
			checks = append(checks, c.assert.IsValidAddress(ctx, string(key), address))
			c.contracts[key] = address
		}
	}
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}

	var err error
	if c.gasOracle, err = newGasOracle(ctx, bsconfig.GasOracleConfig, connector); err != nil {
		return nil, err
	}

	var reconcileOpts []reconcile.Option
	if extension, ok := c.contracts[bsconfig.ContractsBatchTradeExtension]; ok && config.GetBool(bsconfig.ReconcileFilterEmitter) {
		reconcileOpts = append(reconcileOpts, reconcile.WithEmitter(common.HexToAddress(extension)))
	}
	if c.reconciler, err = reconcile.NewReconciler(ctx, c.metrics, reconcileOpts...); err != nil {
		return nil, err
	}

	log.L(ctx).Infof("Basket client initialized for chain %d", c.chainID)
	return c, nil
}

func (c *client) ChainID() int64 {
	return c.chainID
}

// validate returns the first failure from a set of already evaluated checks
func (c *client) validate(ctx context.Context, checks ...error) error {
	for _, err := range checks {
		if err != nil {
			var ve *apitypes.ValidationError
			if errors.As(err, &ve) {
				c.metrics.CountValidationFailure(ctx, ve.Violation)
			}
			log.L(ctx).Debugf("Validation failed: %s", err)
			return err
		}
	}
	return nil
}

func (c *client) contract(ctx context.Context, key config.RootKey) (string, error) {
	address, ok := c.contracts[key]
	if !ok {
		return "", i18n.NewError(ctx, bsmsgs.MsgContractNotConfigured, key)
	}
	return address, nil
}

func (c *client) resolveFrom(from string) string {
	if from == "" {
		return c.defaultFrom
	}
	return from
}

// txChecks validates the sender and any caller supplied overrides
func (c *client) txChecks(ctx context.Context, from string, overrides *apitypes.TxOverrides) []error {
	checks := []error{
		c.assert.IsValidAddress(ctx, "from", from),
	}
	if overrides != nil {
		zero := big.NewInt(0)
		if overrides.Gas != nil {
			checks = append(checks, c.assert.IsGreaterThan(ctx, "txOverrides.gas", overrides.Gas.Int(), zero))
		}
		if overrides.Value != nil {
			checks = append(checks, c.assert.IsGreaterOrEqualThan(ctx, "txOverrides.value", overrides.Value.Int(), zero))
		}
		if overrides.Nonce != nil {
			checks = append(checks, c.assert.IsGreaterOrEqualThan(ctx, "txOverrides.nonce", overrides.Nonce.Int(), zero))
		}
	}
	return checks
}

// buildTxInput merges the caller overrides over the configured defaults. Any
// field set in the overrides wins.
func (c *client) buildTxInput(ctx context.Context, method *methodSpec, to, from string, params []interface{}, overrides *apitypes.TxOverrides) (*ffcapi.TransactionInput, error) {
	input := &ffcapi.TransactionInput{
		TransactionHeaders: ffcapi.TransactionHeaders{
			From: from,
			To:   to,
			Gas:  (*fftypes.FFBigInt)(new(big.Int).Set(c.defaultGasLimit)),
		},
		Method: method.abi,
		Params: make([]*fftypes.JSONAny, len(params)),
	}
	for i, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		input.Params[i] = fftypes.JSONAnyPtrBytes(b)
	}
	if overrides != nil {
		if overrides.Gas != nil {
			input.Gas = overrides.Gas
		}
		input.Value = overrides.Value
		input.Nonce = overrides.Nonce
		input.GasPrice = overrides.GasPrice
	}
	if input.GasPrice.IsNil() {
		gasPrice, err := c.gasOracle.getGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		input.GasPrice = gasPrice
	}
	return input, nil
}

// submit must only be called once every input check has passed
func (c *client) submit(ctx context.Context, method *methodSpec, to, from string, params []interface{}, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	input, err := c.buildTxInput(ctx, method, to, from, params, overrides)
	if err != nil {
		return nil, err
	}

	req := &ffcapi.TransactionSendRequest{TransactionInput: *input}
	req.FFCAPI.RequestID = apitypes.NewRequestID()
	log.L(ctx).Debugf("Submitting %s to %s from %s (id=%s)", method.signature, to, from, req.FFCAPI.RequestID)
	res, reason, err := c.connector.TransactionSend(ctx, req)
	if err != nil {
		return nil, apitypes.NewExternalProviderError(reason, err)
	}
	log.L(ctx).Infof("Submitted %s transaction %s (id=%s)", method.name, res.TransactionHash, req.FFCAPI.RequestID)

	return &apitypes.TransactionHandle{
		ID:              req.FFCAPI.RequestID,
		Method:          method.signature,
		From:            from,
		To:              to,
		Gas:             input.Gas,
		GasPrice:        input.GasPrice,
		TransactionHash: res.TransactionHash,
		Submitted:       fftypes.Now(),
	}, nil
}

func decimalStrings(values []*big.Int) []string {
	s := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			s[i] = v.String()
		}
	}
	return s
}
