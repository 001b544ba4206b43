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

package apitypes

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// TradeInstruction is a single trade submitted to the trade module, or as one entry in a batch trade.
// In a batch, the position of the instruction in the submitted list is the only key that correlates
// it with the failure events emitted during execution.
type TradeInstruction struct {
	ExchangeName       string            `json:"exchangeName"`
	SendToken          string            `json:"sendToken"`
	SendQuantity       *fftypes.FFBigInt `json:"sendQuantity"`
	ReceiveToken       string            `json:"receiveToken"`
	MinReceiveQuantity *fftypes.FFBigInt `json:"minReceiveQuantity"`
	Data               string            `json:"data"` // 0x prefixed hex, passed through to the exchange adapter
}

// OutcomeRecord is the reconciled result of one submitted trade
type OutcomeRecord struct {
	Success      bool              `json:"success"`
	Trade        *TradeInstruction `json:"tradeInfo"`
	RevertReason string            `json:"revertReason,omitempty"` // only set when success is false
}
