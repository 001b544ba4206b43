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
	"fmt"
	"math/big"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/internal/metrics"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-basket-sdk/pkg/reconcile"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// tradeParam is the tuple form of a trade passed to the batch trade extension
type tradeParam struct {
	ExchangeName       string `json:"exchangeName"`
	SendToken          string `json:"sendToken"`
	SendQuantity       string `json:"sendQuantity"`
	ReceiveToken       string `json:"receiveToken"`
	MinReceiveQuantity string `json:"minReceiveQuantity"`
	Data               string `json:"data"`
}

const checkTradeRequired = "isTradeInstruction"

func tradeData(trade *apitypes.TradeInstruction) string {
	if trade.Data == "" {
		return "0x"
	}
	return trade.Data
}

func (c *client) tradeChecks(ctx context.Context, name string, trade *apitypes.TradeInstruction) []error {
	if trade == nil {
		return []error{apitypes.NewValidationError(ctx, name, trade, checkTradeRequired, bsmsgs.MsgMissingTrade, name)}
	}
	return []error{
		c.assert.IsValidString(ctx, name+".exchangeName", trade.ExchangeName),
		c.assert.IsValidAddress(ctx, name+".sendToken", trade.SendToken),
		c.assert.IsValidAddress(ctx, name+".receiveToken", trade.ReceiveToken),
		c.assert.IsDifferentAddress(ctx, name+".sendToken", trade.SendToken, name+".receiveToken", trade.ReceiveToken),
		c.assert.IsGreaterThan(ctx, name+".sendQuantity", trade.SendQuantity.Int(), big.NewInt(0)),
		c.assert.IsGreaterOrEqualThan(ctx, name+".minReceiveQuantity", trade.MinReceiveQuantity.Int(), big.NewInt(0)),
		c.assert.IsValidBytes(ctx, name+".data", tradeData(trade)),
	}
}

func (c *client) Trade(ctx context.Context, setToken string, trade *apitypes.TradeInstruction, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := []error{
		c.assert.IsValidAddress(ctx, "setToken", setToken),
	}
	checks = append(checks, c.tradeChecks(ctx, "trade", trade)...)
	checks = append(checks, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	module, err := c.contract(ctx, bsconfig.ContractsTradeModule)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, tradeMethod, module, from, []interface{}{
		setToken,
		trade.ExchangeName,
		trade.SendToken,
		trade.SendQuantity.String(),
		trade.ReceiveToken,
		trade.MinReceiveQuantity.String(),
		tradeData(trade),
	}, overrides)
}

func (c *client) BatchTrade(ctx context.Context, setToken string, trades []*apitypes.TradeInstruction, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := []error{
		c.assert.IsValidAddress(ctx, "setToken", setToken),
		c.assert.IsNotEmptyArray(ctx, "trades", trades),
		c.assert.IsLessOrEqualThan(ctx, "trades.length", big.NewInt(int64(len(trades))), big.NewInt(int64(c.maxBatchSize))),
	}
	for i, trade := range trades {
		checks = append(checks, c.tradeChecks(ctx, fmt.Sprintf("trades[%d]", i), trade)...)
	}
	checks = append(checks, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	extension, err := c.contract(ctx, bsconfig.ContractsBatchTradeExtension)
	if err != nil {
		return nil, err
	}
	params := make([]*tradeParam, len(trades))
	for i, trade := range trades {
		params[i] = &tradeParam{
			ExchangeName:       trade.ExchangeName,
			SendToken:          trade.SendToken,
			SendQuantity:       trade.SendQuantity.String(),
			ReceiveToken:       trade.ReceiveToken,
			MinReceiveQuantity: trade.MinReceiveQuantity.String(),
			Data:               tradeData(trade),
		}
	}
	return c.submit(ctx, batchTradeMethod, extension, from, []interface{}{setToken, params}, overrides)
}

func (c *client) ReconcileBatchTrade(ctx context.Context, txHash string, trades []*apitypes.TradeInstruction, decoder reconcile.ErrorDecoder) ([]*apitypes.OutcomeRecord, error) {
	if err := c.validate(ctx, c.assert.IsValidBytes32(ctx, "transactionHash", txHash)); err != nil {
		return nil, err
	}

	res, reason, err := c.connector.TransactionReceipt(ctx, &ffcapi.TransactionReceiptRequest{
		TransactionHash: txHash,
		IncludeLogs:     true,
	})
	if err != nil {
		return nil, apitypes.NewExternalProviderError(reason, err)
	}
	if !res.Success {
		// A reverted batch emits no failure events, so there is nothing to reconcile
		return nil, apitypes.NewExternalProviderError(ffcapi.ErrorReasonTransactionReverted, i18n.NewError(ctx, bsmsgs.MsgTransactionReverted, txHash))
	}

	logs := make([]*apitypes.LogEntry, 0, len(res.Logs))
	for i, raw := range res.Logs {
		entry, err := apitypes.ParseLogEntry(raw)
		if err != nil {
			log.L(ctx).Warnf("%s: %s", i18n.NewError(ctx, bsmsgs.MsgReceiptLogParseFailed, i, txHash), err)
			c.metrics.CountSkippedLog(ctx, metrics.SkipUnparseable)
			continue
		}
		logs = append(logs, entry)
	}
	return c.reconciler.Reconcile(ctx, txHash, logs, trades, decoder)
}
