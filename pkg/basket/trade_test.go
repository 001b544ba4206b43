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
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-basket-sdk/pkg/reconcile"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testBatchTxHash = "0x5f0e2b37c04e8a9d6c6b7fe3d0a2c9cb4f67d57b1e2c3ab9f3e2d1c0b9a8f7e6"

func failureLogJSON(t *testing.T, emitter, eventName string, index int64, reason interface{}) fftypes.JSONAny {
	vocab, err := reconcile.Vocabulary(context.Background())
	assert.NoError(t, err)
	event := vocab.Events[eventName]
	data, err := event.Inputs.NonIndexed().Pack(reason)
	assert.NoError(t, err)
	b, err := json.Marshal(&apitypes.LogEntry{
		Address: common.HexToAddress(emitter),
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(common.HexToAddress(testSetToken).Bytes()),
			common.BigToHash(big.NewInt(index)),
		},
		Data: data,
	})
	assert.NoError(t, err)
	return fftypes.JSONAny(b)
}

func TestTradeOK(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		return req.To == testTradeModule &&
			len(req.Params) == 7 &&
			req.Params[1].String() == `"UniswapV3ExchangeAdapter"` &&
			req.Params[3].String() == `"1000"` &&
			req.Params[5].String() == `"990"` &&
			req.Params[6].String() == `"0x0bb8"`
	})
	handle, err := c.Trade(ctx, testSetToken, testTrade(), "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "trade(address,string,address,uint256,address,uint256,bytes)", handle.Method)
}

func TestTradeEmptyDataSentAsEmptyBytes(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		return req.Params[6].String() == `"0x"`
	})
	trade := testTrade()
	trade.Data = ""
	_, err := c.Trade(ctx, testSetToken, trade, "", nil)
	assert.NoError(t, err)
}

func TestTradeInvalid(t *testing.T) {
	for name, mod := range map[string]func(trade *apitypes.TradeInstruction){
		"trade.sendToken,trade.receiveToken": func(trade *apitypes.TradeInstruction) { trade.ReceiveToken = trade.SendToken },
		"trade.sendQuantity":                 func(trade *apitypes.TradeInstruction) { trade.SendQuantity = fftypes.NewFFBigInt(0) },
		"trade.minReceiveQuantity":           func(trade *apitypes.TradeInstruction) { trade.MinReceiveQuantity = nil },
		"trade.exchangeName":                 func(trade *apitypes.TradeInstruction) { trade.ExchangeName = "" },
		"trade.data":                         func(trade *apitypes.TradeInstruction) { trade.Data = "0x123" },
	} {
		t.Run(name, func(t *testing.T) {
			ctx, c, mca := newTestClient(t)
			trade := testTrade()
			mod(trade)
			_, err := c.Trade(ctx, testSetToken, trade, "", nil)
			ve := validationError(t, err)
			assert.Equal(t, name, ve.Field)
			assertNoProviderCalls(t, mca)
		})
	}
}

func TestTradeNil(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	_, err := c.Trade(ctx, testSetToken, nil, "", nil)
	ve := validationError(t, err)
	assert.Equal(t, "trade", ve.Field)
	assert.Equal(t, checkTradeRequired, ve.Violation)
	assert.Regexp(t, "FF21522.*'trade' must be a trade instruction", err)
	assertNoProviderCalls(t, mca)
}

func TestBatchTradeOK(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	second := testTrade()
	second.SendToken, second.ReceiveToken = testUSDC, testWETH
	second.Data = ""
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		var trades []*tradeParam
		if err := json.Unmarshal(req.Params[1].Bytes(), &trades); err != nil {
			return false
		}
		return req.To == testExtension &&
			req.Params[0].String() == `"`+testSetToken+`"` &&
			len(trades) == 2 &&
			trades[0].SendToken == testWETH &&
			trades[0].SendQuantity == "1000" &&
			trades[0].MinReceiveQuantity == "990" &&
			trades[1].SendToken == testUSDC &&
			trades[1].Data == "0x"
	})
	handle, err := c.BatchTrade(ctx, testSetToken, []*apitypes.TradeInstruction{testTrade(), second}, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "batchTrade(address,(string,address,uint256,address,uint256,bytes)[])", handle.Method)
	mca.AssertExpectations(t)
}

func TestBatchTradeEmpty(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	_, err := c.BatchTrade(ctx, testSetToken, []*apitypes.TradeInstruction{}, "", nil)
	ve := validationError(t, err)
	assert.Equal(t, "isNotEmptyArray", ve.Violation)
	assertNoProviderCalls(t, mca)
}

func TestBatchTradeTooLarge(t *testing.T) {
	ctx, c, mca := newTestClient(t, func() {
		config.Set(bsconfig.TransactionsMaxBatchSize, 2)
	})
	_, err := c.BatchTrade(ctx, testSetToken, []*apitypes.TradeInstruction{testTrade(), testTrade(), testTrade()}, "", nil)
	ve := validationError(t, err)
	assert.Equal(t, "trades.length", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestBatchTradeInvalidEntryNamesIndex(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	bad := testTrade()
	bad.SendQuantity = fftypes.NewFFBigInt(-5)
	_, err := c.BatchTrade(ctx, testSetToken, []*apitypes.TradeInstruction{testTrade(), bad}, "", nil)
	ve := validationError(t, err)
	assert.Equal(t, "trades[1].sendQuantity", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestReconcileBatchTrade(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	trades := []*apitypes.TradeInstruction{testTrade(), testTrade(), testTrade()}
	mca.On("TransactionReceipt", mock.Anything, mock.MatchedBy(func(req *ffcapi.TransactionReceiptRequest) bool {
		return req.TransactionHash == testBatchTxHash && req.IncludeLogs
	})).Return(&ffcapi.TransactionReceiptResponse{
		Success: true,
		Logs: []fftypes.JSONAny{
			fftypes.JSONAny(`{"address":"` + testWETH + `","topics":["0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"],"data":"0x"}`),
			failureLogJSON(t, testExtension, reconcile.EventStringTradeFailed, 1, "insufficient balance"),
			failureLogJSON(t, testWETH, reconcile.EventStringTradeFailed, 0, "not from the extension"),
			fftypes.JSONAny(`{"topics":"not an array"}`),
		},
	}, ffcapi.ErrorReason(""), nil)

	outcomes, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, trades, nil)
	assert.NoError(t, err)
	assert.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Success)
	assert.False(t, outcomes[1].Success)
	assert.Equal(t, "insufficient balance", outcomes[1].RevertReason)
	assert.True(t, outcomes[2].Success)
	for i, o := range outcomes {
		assert.Same(t, trades[i], o.Trade)
	}
}

func TestReconcileBatchTradeWithoutEmitterFilter(t *testing.T) {
	ctx, c, mca := newTestClient(t, func() {
		config.Set(bsconfig.ReconcileFilterEmitter, false)
	})
	mca.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&ffcapi.TransactionReceiptResponse{
		Success: true,
		Logs: []fftypes.JSONAny{
			failureLogJSON(t, testWETH, reconcile.EventStringTradeFailed, 0, "accepted from any emitter"),
		},
	}, ffcapi.ErrorReason(""), nil)

	outcomes, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, []*apitypes.TradeInstruction{testTrade()}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "accepted from any emitter", outcomes[0].RevertReason)
}

func TestReconcileBatchTradeCustomDecoder(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mca.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&ffcapi.TransactionReceiptResponse{
		Success: true,
		Logs: []fftypes.JSONAny{
			failureLogJSON(t, testExtension, reconcile.EventBytesTradeFailed, 0, []byte{0x01, 0x02, 0x03, 0x04}),
		},
	}, ffcapi.ErrorReason(""), nil)

	outcomes, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, []*apitypes.TradeInstruction{testTrade(), testTrade()}, reconcile.ErrorDecoderFunc(func(ctx context.Context, payload []byte) (string, error) {
		return "slippage exceeded", nil
	}))
	assert.NoError(t, err)
	assert.Equal(t, "slippage exceeded", outcomes[0].RevertReason)
	assert.True(t, outcomes[1].Success)
}

func TestReconcileBatchTradeOutOfRange(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mca.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&ffcapi.TransactionReceiptResponse{
		Success: true,
		Logs: []fftypes.JSONAny{
			failureLogJSON(t, testExtension, reconcile.EventStringTradeFailed, 5, "where"),
		},
	}, ffcapi.ErrorReason(""), nil)

	_, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, []*apitypes.TradeInstruction{testTrade()}, nil)
	var rie *apitypes.ReconciliationInconsistencyError
	assert.True(t, errors.As(err, &rie))
}

func TestReconcileBatchTradeBadHash(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	_, err := c.ReconcileBatchTrade(ctx, "0x1234", []*apitypes.TradeInstruction{testTrade()}, nil)
	ve := validationError(t, err)
	assert.Equal(t, "transactionHash", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestReconcileBatchTradeReceiptError(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mca.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, ffcapi.ErrorReasonNotFound, fmt.Errorf("not found"))

	_, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, []*apitypes.TradeInstruction{testTrade()}, nil)
	var epe *apitypes.ExternalProviderError
	assert.True(t, errors.As(err, &epe))
	assert.Equal(t, ffcapi.ErrorReasonNotFound, epe.Reason)
}

func TestReconcileBatchTradeReverted(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mca.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&ffcapi.TransactionReceiptResponse{
		Success: false,
	}, ffcapi.ErrorReason(""), nil)

	outcomes, err := c.ReconcileBatchTrade(ctx, testBatchTxHash, []*apitypes.TradeInstruction{testTrade(), testTrade()}, nil)
	assert.Nil(t, outcomes)
	assert.Regexp(t, "FF21550", err)
	var epe *apitypes.ExternalProviderError
	assert.True(t, errors.As(err, &epe))
	assert.Equal(t, ffcapi.ErrorReasonTransactionReverted, epe.Reason)
}
