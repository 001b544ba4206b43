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

// TxOverrides are optional per-call transaction settings. Any field that is set
// replaces the environment default for that call only.
type TxOverrides struct {
	Gas      *fftypes.FFBigInt `json:"gas,omitempty"`
	GasPrice *fftypes.JSONAny  `json:"gasPrice,omitempty"` // passed through to the connector, so can be a simple value or an EIP-1559 object
	Value    *fftypes.FFBigInt `json:"value,omitempty"`
	Nonce    *fftypes.FFBigInt `json:"nonce,omitempty"`
}

// TransactionHandle is returned once the connector has accepted a transaction for submission
type TransactionHandle struct {
	ID              *fftypes.UUID     `json:"id"`
	Method          string            `json:"method"`
	From            string            `json:"from,omitempty"`
	To              string            `json:"to"`
	Gas             *fftypes.FFBigInt `json:"gas,omitempty"`
	GasPrice        *fftypes.JSONAny  `json:"gasPrice,omitempty"`
	TransactionHash string            `json:"transactionHash"`
	Submitted       *fftypes.FFTime   `json:"submitted"`
}
