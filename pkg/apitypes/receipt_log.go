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
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// LogEntry is a raw log emitted during execution of a transaction. It might have been
// emitted by any contract touched by the transaction, so the topics might not be from
// any vocabulary this SDK understands.
type LogEntry struct {
	Address  common.Address    `json:"address"`
	Topics   []common.Hash     `json:"topics"`
	Data     hexutil.Bytes     `json:"data"`
	LogIndex *fftypes.FFBigInt `json:"logIndex,omitempty"`
}

// ParseLogEntry parses one of the raw un-decoded logs returned on a receipt
func ParseLogEntry(raw fftypes.JSONAny) (*LogEntry, error) {
	var entry LogEntry
	if err := json.Unmarshal(raw.Bytes(), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
