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

package bsmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigChainID           = ffc("config.chain.id", "The chain ID of the network the SDK submits transactions to", i18n.IntType)
	ConfigChainSupportedIDs = ffc("config.chain.supportedIds", "The chain IDs the protocol contracts are deployed on. The configured chain ID must be one of these", i18n.ArrayStringType)

	ConfigTransactionsDefaultFrom     = ffc("config.transactions.defaultFrom", "The signing address used when an operation is called without a caller address", i18n.StringType)
	ConfigTransactionsDefaultGasLimit = ffc("config.transactions.defaultGasLimit", "The gas limit applied to a transaction when the caller does not override it", i18n.IntType)
	ConfigTransactionsMaxBatchSize    = ffc("config.transactions.maxBatchSize", "The maximum number of trades accepted in a single batch trade", i18n.IntType)

	ConfigFeesMaxStreamingFeePercentage = ffc("config.fees.maxStreamingFeePercentage", "The largest streaming fee accepted by updateStreamingFee, as an 18 decimal precise unit (1e18 is 100%)", i18n.StringType)

	ConfigContractsSetTokenCreator     = ffc("config.contracts.setTokenCreator", "Address of the SetTokenCreator factory contract", i18n.StringType)
	ConfigContractsBasicIssuanceModule = ffc("config.contracts.basicIssuanceModule", "Address of the BasicIssuanceModule contract", i18n.StringType)
	ConfigContractsStreamingFeeModule  = ffc("config.contracts.streamingFeeModule", "Address of the StreamingFeeModule contract", i18n.StringType)
	ConfigContractsTradeModule         = ffc("config.contracts.tradeModule", "Address of the TradeModule contract", i18n.StringType)
	ConfigContractsBatchTradeExtension = ffc("config.contracts.batchTradeExtension", "Address of the BatchTradeExtension contract, which emits the per-trade failure events", i18n.StringType)

	ConfigReconcileFilterEmitter = ffc("config.reconcile.filterEmitter", "Only consider failure events emitted by the configured batch trade extension when reconciling", i18n.BooleanType)

	ConfigMetricsEnabled = ffc("config.metrics.enabled", "Enables the prometheus metrics collectors", i18n.BooleanType)

	ConfigGasOracleMode          = ffc("config.gasOracle.mode", "The gas price source for transactions that do not override it: 'fixed', 'connector' or 'restapi'", i18n.StringType)
	ConfigGasOracleFixedGasPrice = ffc("config.gasOracle.fixedGasPrice", "A fixed gas price, passed as raw JSON to the connector, used when the mode is 'fixed'", i18n.StringType)
	ConfigGasOracleMethod        = ffc("config.gasOracle.method", "The HTTP method used to query the gas oracle REST API", i18n.StringType)
	ConfigGasOracleTemplate      = ffc("config.gasOracle.template", "A Go template, with sprig functions, to extract the gas price from the gas oracle REST API response", i18n.GoTemplateType)
)
