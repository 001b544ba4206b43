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
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/mocks/ffcapimocks"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testFrom        = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testCreator     = "0x1000000000000000000000000000000000000001"
	testIssuance    = "0x1000000000000000000000000000000000000002"
	testStreaming   = "0x1000000000000000000000000000000000000003"
	testTradeModule = "0x1000000000000000000000000000000000000004"
	testExtension   = "0x1000000000000000000000000000000000000005"
	testSetToken    = "0x2000000000000000000000000000000000000001"
	testWETH        = "0x3000000000000000000000000000000000000001"
	testUSDC        = "0x3000000000000000000000000000000000000002"
	testModuleA     = "0x4000000000000000000000000000000000000001"
	testModuleB     = "0x4000000000000000000000000000000000000002"
)

func resetTestConfig() {
	bsconfig.Reset()
	config.Set(bsconfig.TransactionsDefaultFrom, testFrom)
	config.Set(bsconfig.ContractsSetTokenCreator, testCreator)
	config.Set(bsconfig.ContractsBasicIssuanceModule, testIssuance)
	config.Set(bsconfig.ContractsStreamingFeeModule, testStreaming)
	config.Set(bsconfig.ContractsTradeModule, testTradeModule)
	config.Set(bsconfig.ContractsBatchTradeExtension, testExtension)
}

func newTestClient(t *testing.T, setup ...func()) (context.Context, *client, *ffcapimocks.API) {
	resetTestConfig()
	for _, fn := range setup {
		fn()
	}
	ctx := context.Background()
	mca := &ffcapimocks.API{}
	c, err := NewClient(ctx, mca)
	assert.NoError(t, err)
	return ctx, c.(*client), mca
}

func mockGasPrice(mca *ffcapimocks.API) {
	mca.On("GasPriceEstimate", mock.Anything, mock.Anything).Return(&ffcapi.GasPriceEstimateResponse{
		GasPrice: fftypes.JSONAnyPtr(`"20000000000"`),
	}, ffcapi.ErrorReason(""), nil)
}

func mockSend(mca *ffcapimocks.API, match func(req *ffcapi.TransactionSendRequest) bool) {
	mca.On("TransactionSend", mock.Anything, mock.MatchedBy(match)).Return(&ffcapi.TransactionSendResponse{
		TransactionHash: "0x8b5c81b0d6b9e0d8d8a4f2c2f2a1f1e2c2b1a0f9e8d7c6b5a4f3e2d1c0b9a8f7",
	}, ffcapi.ErrorReason(""), nil)
}

func assertNoProviderCalls(t *testing.T, mca *ffcapimocks.API) {
	mca.AssertNotCalled(t, "TransactionSend", mock.Anything, mock.Anything)
	mca.AssertNotCalled(t, "GasPriceEstimate", mock.Anything, mock.Anything)
	mca.AssertNotCalled(t, "TransactionReceipt", mock.Anything, mock.Anything)
}

func validationError(t *testing.T, err error) *apitypes.ValidationError {
	var ve *apitypes.ValidationError
	assert.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve
}

func testTrade() *apitypes.TradeInstruction {
	return &apitypes.TradeInstruction{
		ExchangeName:       "UniswapV3ExchangeAdapter",
		SendToken:          testWETH,
		SendQuantity:       fftypes.NewFFBigInt(1000),
		ReceiveToken:       testUSDC,
		MinReceiveQuantity: fftypes.NewFFBigInt(990),
		Data:               "0x0bb8",
	}
}

func TestNewClientDefaults(t *testing.T) {
	_, c, _ := newTestClient(t)
	assert.Equal(t, int64(1), c.ChainID())
	assert.Equal(t, testFrom, c.defaultFrom)
	assert.Equal(t, int64(2000000), c.defaultGasLimit.Int64())
	assert.Equal(t, 20, c.maxBatchSize)
	assert.Equal(t, "1000000000000000000", c.maxStreamingFee.String())
	assert.Len(t, c.contracts, 5)
}

func TestNewClientUnsupportedChain(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.ChainID, 5)
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	ve := validationError(t, err)
	assert.Equal(t, "isSupportedChainId", ve.Violation)
	assert.Regexp(t, "FF21520", err)
}

func TestNewClientCustomSupportedChain(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.ChainSupportedIDs, []string{"5"})
	config.Set(bsconfig.ChainID, 5)
	c, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), c.ChainID())
}

func TestNewClientBadSupportedChainList(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.ChainSupportedIDs, []string{"mainnet"})
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21508", err)
}

func TestNewClientBadContractAddress(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.ContractsTradeModule, "0x1234")
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	ve := validationError(t, err)
	assert.Equal(t, "contracts.tradeModule", ve.Field)
}

func TestNewClientBadDefaultFrom(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.TransactionsDefaultFrom, "signer1")
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	ve := validationError(t, err)
	assert.Equal(t, "transactions.defaultFrom", ve.Field)
}

func TestNewClientBadMaxFee(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.FeesMaxStreamingFeePercentage, "lots")
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21507", err)
}

func TestNewClientBadMaxBatchSize(t *testing.T) {
	resetTestConfig()
	config.Set(bsconfig.TransactionsMaxBatchSize, 0)
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	ve := validationError(t, err)
	assert.Equal(t, "transactions.maxBatchSize", ve.Field)
}

func TestNewClientFromConfig(t *testing.T) {
	resetTestConfig()
	bsconfig.ConnectorConfig.Set(ffresty.HTTPConfigURL, "http://localhost:5102")
	c, err := NewClientFromConfig(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, c)
}

func TestMalformedAddressesNeverReachProvider(t *testing.T) {
	badAddresses := []string{"", "0x1234", "0xZZ00000000000000000000000000000000000000", "3000000000000000000000000000000000000001"}
	for _, bad := range badAddresses {
		ops := map[string]func(ctx context.Context, c Client) error{
			"createSetToken.components": func(ctx context.Context, c Client) error {
				_, err := c.CreateSetToken(ctx, []string{testWETH, bad}, []*big.Int{big.NewInt(1), big.NewInt(2)}, []string{testModuleA}, testFrom, "Index", "IDX", "", nil)
				return err
			},
			"createSetToken.modules": func(ctx context.Context, c Client) error {
				_, err := c.CreateSetToken(ctx, []string{testWETH}, []*big.Int{big.NewInt(1)}, []string{bad}, testFrom, "Index", "IDX", "", nil)
				return err
			},
			"createSetToken.manager": func(ctx context.Context, c Client) error {
				_, err := c.CreateSetToken(ctx, []string{testWETH}, []*big.Int{big.NewInt(1)}, []string{testModuleA}, bad, "Index", "IDX", "", nil)
				return err
			},
			"issue.setToken": func(ctx context.Context, c Client) error {
				_, err := c.Issue(ctx, bad, big.NewInt(1), testFrom, "", nil)
				return err
			},
			"issue.to": func(ctx context.Context, c Client) error {
				_, err := c.Issue(ctx, testSetToken, big.NewInt(1), bad, "", nil)
				return err
			},
			"redeem.setToken": func(ctx context.Context, c Client) error {
				_, err := c.Redeem(ctx, bad, big.NewInt(1), testFrom, "", nil)
				return err
			},
			"updateStreamingFee.setToken": func(ctx context.Context, c Client) error {
				_, err := c.UpdateStreamingFee(ctx, bad, big.NewInt(1), "", nil)
				return err
			},
			"accrueFee.setToken": func(ctx context.Context, c Client) error {
				_, err := c.AccrueFee(ctx, bad, "", nil)
				return err
			},
			"trade.sendToken": func(ctx context.Context, c Client) error {
				trade := testTrade()
				trade.SendToken = bad
				_, err := c.Trade(ctx, testSetToken, trade, "", nil)
				return err
			},
			"batchTrade.setToken": func(ctx context.Context, c Client) error {
				_, err := c.BatchTrade(ctx, bad, []*apitypes.TradeInstruction{testTrade()}, "", nil)
				return err
			},
			"batchTrade.receiveToken": func(ctx context.Context, c Client) error {
				trade := testTrade()
				trade.ReceiveToken = bad
				_, err := c.BatchTrade(ctx, testSetToken, []*apitypes.TradeInstruction{testTrade(), trade}, "", nil)
				return err
			},
		}
		for name, op := range ops {
			t.Run(fmt.Sprintf("%s(%q)", name, bad), func(t *testing.T) {
				ctx, c, mca := newTestClient(t)
				err := op(ctx, c)
				validationError(t, err)
				assertNoProviderCalls(t, mca)
			})
		}
	}
}

func TestMalformedFromNeverReachesProvider(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	_, err := c.AccrueFee(ctx, testSetToken, "0x1234", nil)
	ve := validationError(t, err)
	assert.Equal(t, "from", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestMissingFromWithoutDefault(t *testing.T) {
	ctx, c, mca := newTestClient(t, func() {
		config.Set(bsconfig.TransactionsDefaultFrom, "")
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	ve := validationError(t, err)
	assert.Equal(t, "from", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestInvalidOverridesNeverReachProvider(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	_, err := c.AccrueFee(ctx, testSetToken, "", &apitypes.TxOverrides{Gas: fftypes.NewFFBigInt(0)})
	ve := validationError(t, err)
	assert.Equal(t, "txOverrides.gas", ve.Field)

	_, err = c.AccrueFee(ctx, testSetToken, "", &apitypes.TxOverrides{Nonce: fftypes.NewFFBigInt(-1)})
	ve = validationError(t, err)
	assert.Equal(t, "txOverrides.nonce", ve.Field)

	_, err = c.AccrueFee(ctx, testSetToken, "", &apitypes.TxOverrides{Value: fftypes.NewFFBigInt(-1)})
	ve = validationError(t, err)
	assert.Equal(t, "txOverrides.value", ve.Field)
	assertNoProviderCalls(t, mca)
}

func TestContractNotConfigured(t *testing.T) {
	ctx, c, mca := newTestClient(t, func() {
		config.Set(bsconfig.ContractsStreamingFeeModule, "")
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.Regexp(t, "FF21530.*contracts.streamingFeeModule", err)
	assertNoProviderCalls(t, mca)
}

func TestSubmitDefaults(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	var sentID *fftypes.UUID
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		sentID = req.FFCAPI.RequestID
		return req.From == testFrom &&
			req.To == testStreaming &&
			req.Gas.Int().Int64() == 2000000 &&
			req.GasPrice.String() == `"20000000000"` &&
			req.Nonce == nil &&
			len(req.Params) == 1 &&
			req.Params[0].String() == `"`+testSetToken+`"`
	})

	handle, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.NoError(t, err)
	assert.NotNil(t, handle.ID)
	assert.Equal(t, sentID, handle.ID)
	assert.Equal(t, "accrueFee(address)", handle.Method)
	assert.Equal(t, testFrom, handle.From)
	assert.Equal(t, testStreaming, handle.To)
	assert.Equal(t, int64(2000000), handle.Gas.Int().Int64())
	assert.Equal(t, "0x8b5c81b0d6b9e0d8d8a4f2c2f2a1f1e2c2b1a0f9e8d7c6b5a4f3e2d1c0b9a8f7", handle.TransactionHash)
	assert.NotNil(t, handle.Submitted)
	mca.AssertExpectations(t)
}

func TestSubmitOverridesWin(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	sender := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		return req.From == sender &&
			req.Gas.Int().Int64() == 50000 &&
			req.Nonce.Int().Int64() == 7 &&
			req.Value.Int().Int64() == 0 &&
			req.GasPrice.String() == `{"maxFeePerGas":"30000000000","maxPriorityFeePerGas":"1000000000"}`
	})

	handle, err := c.AccrueFee(ctx, testSetToken, sender, &apitypes.TxOverrides{
		Gas:      fftypes.NewFFBigInt(50000),
		Nonce:    fftypes.NewFFBigInt(7),
		Value:    fftypes.NewFFBigInt(0),
		GasPrice: fftypes.JSONAnyPtr(`{"maxFeePerGas":"30000000000","maxPriorityFeePerGas":"1000000000"}`),
	})
	assert.NoError(t, err)
	assert.Equal(t, sender, handle.From)
	mca.AssertNotCalled(t, "GasPriceEstimate", mock.Anything, mock.Anything)
	mca.AssertExpectations(t)
}

func TestSubmitConnectorError(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	mca.On("TransactionSend", mock.Anything, mock.Anything).Return(nil, ffcapi.ErrorReasonInsufficientFunds, fmt.Errorf("insufficient funds for gas * price + value"))

	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	var epe *apitypes.ExternalProviderError
	assert.True(t, errors.As(err, &epe))
	assert.Equal(t, ffcapi.ErrorReasonInsufficientFunds, epe.Reason)
	assert.Equal(t, "insufficient funds for gas * price + value", err.Error())
	mca.AssertNumberOfCalls(t, "TransactionSend", 1)
}

func TestSubmitGasEstimateError(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mca.On("GasPriceEstimate", mock.Anything, mock.Anything).Return(nil, ffcapi.ErrorReason(""), fmt.Errorf("pop"))

	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	var epe *apitypes.ExternalProviderError
	assert.True(t, errors.As(err, &epe))
	assert.Regexp(t, "pop", err)
	mca.AssertNotCalled(t, "TransactionSend", mock.Anything, mock.Anything)
}

func TestGasPriceQueriedPerSubmission(t *testing.T) {
	ctx, c, mca := newTestClient(t)
	mockGasPrice(mca)
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool { return true })

	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.NoError(t, err)
	_, err = c.AccrueFee(ctx, testSetToken, "", nil)
	assert.NoError(t, err)
	mca.AssertNumberOfCalls(t, "GasPriceEstimate", 2)
}

func TestFixedGasPrice(t *testing.T) {
	ctx, c, mca := newTestClient(t, func() {
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeFixed)
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleFixedGasPrice, `12345`)
	})
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		return req.GasPrice.String() == `12345`
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.NoError(t, err)
	mca.AssertNotCalled(t, "GasPriceEstimate", mock.Anything, mock.Anything)
}

func TestFixedGasPriceMissing(t *testing.T) {
	resetTestConfig()
	bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeFixed)
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21548", err)
}

func TestUnknownGasOracleMode(t *testing.T) {
	resetTestConfig()
	bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, "wrong")
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21549", err)
}

func TestRESTGasOracle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"safeLow":{"maxFee":30.1,"maxPriorityFee":1.5},"fast":{"maxFee":40.2,"maxPriorityFee":2.5}}`))
	}))
	defer server.Close()

	ctx, c, mca := newTestClient(t, func() {
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
		bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleTemplate, `{"maxPriorityFeePerGas":{{ mulf .fast.maxPriorityFee 1000000000 | int }},"maxFeePerGas":{{ mulf .fast.maxFee 1000000000 | int }}}`)
	})
	mockSend(mca, func(req *ffcapi.TransactionSendRequest) bool {
		return req.GasPrice.String() == `{"maxPriorityFeePerGas":2500000000,"maxFeePerGas":40200000000}`
	})

	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.NoError(t, err)
	mca.AssertExpectations(t)
}

func TestRESTGasOracleErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer server.Close()

	ctx, c, mca := newTestClient(t, func() {
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
		bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigRetryEnabled, false)
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleTemplate, `{{ .price }}`)
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	var epe *apitypes.ExternalProviderError
	assert.True(t, errors.As(err, &epe))
	assert.Regexp(t, "FF21545.*500", err)
	mca.AssertNotCalled(t, "TransactionSend", mock.Anything, mock.Anything)
}

func TestRESTGasOracleBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, c, _ := newTestClient(t, func() {
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
		bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleTemplate, `{{ .price }}`)
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.Regexp(t, "FF21546", err)
}

func TestRESTGasOracleTemplateExecFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"price":"x"}`))
	}))
	defer server.Close()

	ctx, c, _ := newTestClient(t, func() {
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
		bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		bsconfig.GasOracleConfig.Set(bsconfig.GasOracleTemplate, `{{ call .price }}`)
	})
	_, err := c.AccrueFee(ctx, testSetToken, "", nil)
	assert.Regexp(t, "FF21547", err)
}

func TestRESTGasOracleMissingTemplate(t *testing.T) {
	resetTestConfig()
	bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
	bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, "http://localhost:8545")
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21543", err)
}

func TestRESTGasOracleBadTemplate(t *testing.T) {
	resetTestConfig()
	bsconfig.GasOracleConfig.Set(bsconfig.GasOracleMode, bsconfig.GasOracleModeRESTAPI)
	bsconfig.GasOracleConfig.Set(ffresty.HTTPConfigURL, "http://localhost:8545")
	bsconfig.GasOracleConfig.Set(bsconfig.GasOracleTemplate, `{{ !wrong }}`)
	_, err := NewClient(context.Background(), &ffcapimocks.API{})
	assert.Regexp(t, "FF21544", err)
}
