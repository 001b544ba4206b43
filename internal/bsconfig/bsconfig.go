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

package bsconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// ChainID is the chain the SDK is submitting to, which must be in the supported list
	ChainID = ffc("chain.id")
	// ChainSupportedIDs is the allow-list of chain IDs the deployed protocol contracts exist on
	ChainSupportedIDs = ffc("chain.supportedIds")
	// TransactionsDefaultFrom is the signing address used when a caller does not supply one
	TransactionsDefaultFrom = ffc("transactions.defaultFrom")
	// TransactionsDefaultGasLimit is the gas ceiling applied when a caller does not supply one
	TransactionsDefaultGasLimit = ffc("transactions.defaultGasLimit")
	// TransactionsMaxBatchSize is the maximum number of trades in a single batch trade transaction
	TransactionsMaxBatchSize = ffc("transactions.maxBatchSize")
	// FeesMaxStreamingFeePercentage is the highest streaming fee accepted, in 18 decimal precise units
	FeesMaxStreamingFeePercentage = ffc("fees.maxStreamingFeePercentage")
	// ContractsSetTokenCreator is the address of the SetToken factory contract
	ContractsSetTokenCreator = ffc("contracts.setTokenCreator")
	// ContractsBasicIssuanceModule is the address of the issuance module
	ContractsBasicIssuanceModule = ffc("contracts.basicIssuanceModule")
	// ContractsStreamingFeeModule is the address of the streaming fee module
	ContractsStreamingFeeModule = ffc("contracts.streamingFeeModule")
	// ContractsTradeModule is the address of the single trade module
	ContractsTradeModule = ffc("contracts.tradeModule")
	// ContractsBatchTradeExtension is the address of the extension that emits the trade failure events
	ContractsBatchTradeExtension = ffc("contracts.batchTradeExtension")
	// ReconcileFilterEmitter restricts reconciliation to logs emitted by the batch trade extension
	ReconcileFilterEmitter = ffc("reconcile.filterEmitter")
	// MetricsEnabled turns on the prometheus collectors
	MetricsEnabled = ffc("metrics.enabled")
)

// Gas oracle sub-section keys
const (
	GasOracleMode          = "mode"
	GasOracleFixedGasPrice = "fixedGasPrice" // treated as raw JSON, so can be numeric 123, string "123", or an EIP-1559 object
	GasOracleMethod        = "method"
	GasOracleTemplate      = "template"
)

const (
	GasOracleModeFixed     = "fixed"
	GasOracleModeConnector = "connector"
	GasOracleModeRESTAPI   = "restapi"
)

var ConnectorConfig config.Section

var GasOracleConfig config.Section

func setDefaults() {
	viper.SetDefault(string(ChainID), 1)
	viper.SetDefault(string(ChainSupportedIDs), []string{"1", "10", "137", "8453", "42161", "1337", "31337"})
	viper.SetDefault(string(TransactionsDefaultGasLimit), 2000000)
	viper.SetDefault(string(TransactionsMaxBatchSize), 20)
	viper.SetDefault(string(FeesMaxStreamingFeePercentage), "1000000000000000000")
	viper.SetDefault(string(ReconcileFilterEmitter), true)
	viper.SetDefault(string(MetricsEnabled), false)
}

func Reset() {
	config.RootConfigReset(setDefaults)

	ConnectorConfig = config.RootSection("connector")
	ffresty.InitConfig(ConnectorConfig)

	GasOracleConfig = config.RootSection("gasOracle")
	ffresty.InitConfig(GasOracleConfig)
	GasOracleConfig.AddKnownKey(GasOracleMode, GasOracleModeConnector)
	GasOracleConfig.AddKnownKey(GasOracleFixedGasPrice)
	GasOracleConfig.AddKnownKey(GasOracleMethod, "GET")
	GasOracleConfig.AddKnownKey(GasOracleTemplate)
}
