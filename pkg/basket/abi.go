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
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// methodSpec is one contract function, carried to the connector as its ABI
// fragment so the connector can encode the call.
type methodSpec struct {
	name      string
	signature string
	abi       *fftypes.JSONAny
}

func mustMethod(fragment string) *methodSpec {
	parsed, err := abi.JSON(strings.NewReader("[" + fragment + "]"))
	if err != nil {
		panic(err)
	}
	for name, m := range parsed.Methods {
		return &methodSpec{
			name:      name,
			signature: m.Sig,
			abi:       fftypes.JSONAnyPtr(fragment),
		}
	}
	panic("no method in fragment")
}

var (
	createSetTokenMethod = mustMethod(`{
		"type": "function",
		"name": "create",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_components", "type": "address[]"},
			{"name": "_units", "type": "int256[]"},
			{"name": "_modules", "type": "address[]"},
			{"name": "_manager", "type": "address"},
			{"name": "_name", "type": "string"},
			{"name": "_symbol", "type": "string"}
		],
		"outputs": [{"name": "", "type": "address"}]
	}`)

	issueMethod = mustMethod(`{
		"type": "function",
		"name": "issue",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"},
			{"name": "_quantity", "type": "uint256"},
			{"name": "_to", "type": "address"}
		],
		"outputs": []
	}`)

	redeemMethod = mustMethod(`{
		"type": "function",
		"name": "redeem",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"},
			{"name": "_quantity", "type": "uint256"},
			{"name": "_to", "type": "address"}
		],
		"outputs": []
	}`)

	updateStreamingFeeMethod = mustMethod(`{
		"type": "function",
		"name": "updateStreamingFee",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"},
			{"name": "_newFee", "type": "uint256"}
		],
		"outputs": []
	}`)

	accrueFeeMethod = mustMethod(`{
		"type": "function",
		"name": "accrueFee",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"}
		],
		"outputs": []
	}`)

	tradeMethod = mustMethod(`{
		"type": "function",
		"name": "trade",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"},
			{"name": "_exchangeName", "type": "string"},
			{"name": "_sendToken", "type": "address"},
			{"name": "_sendQuantity", "type": "uint256"},
			{"name": "_receiveToken", "type": "address"},
			{"name": "_minReceiveQuantity", "type": "uint256"},
			{"name": "_data", "type": "bytes"}
		],
		"outputs": []
	}`)

	batchTradeMethod = mustMethod(`{
		"type": "function",
		"name": "batchTrade",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_setToken", "type": "address"},
			{"name": "_trades", "type": "tuple[]", "components": [
				{"name": "exchangeName", "type": "string"},
				{"name": "sendToken", "type": "address"},
				{"name": "sendQuantity", "type": "uint256"},
				{"name": "receiveToken", "type": "address"},
				{"name": "minReceiveQuantity", "type": "uint256"},
				{"name": "data", "type": "bytes"}
			]}
		],
		"outputs": []
	}`)
)
