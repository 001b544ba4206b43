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

package reconcile

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

const (
	EventStringTradeFailed = "StringTradeFailed"
	EventBytesTradeFailed  = "BytesTradeFailed"
)

// VocabularyABI is the set of failure events the batch trade extension emits.
// The _index topic is the position of the failed trade in the submitted batch.
const VocabularyABI = `[
	{
		"type": "event",
		"name": "StringTradeFailed",
		"anonymous": false,
		"inputs": [
			{"name": "_setToken", "type": "address", "indexed": true},
			{"name": "_index", "type": "uint256", "indexed": true},
			{"name": "_reason", "type": "string", "indexed": false}
		]
	},
	{
		"type": "event",
		"name": "BytesTradeFailed",
		"anonymous": false,
		"inputs": [
			{"name": "_setToken", "type": "address", "indexed": true},
			{"name": "_index", "type": "uint256", "indexed": true},
			{"name": "_reason", "type": "bytes", "indexed": false}
		]
	}
]`

const (
	argSetToken = "_setToken"
	argIndex    = "_index"
	argReason   = "_reason"
)

// Vocabulary parses the event ABI, checking both failure events are present
func Vocabulary(ctx context.Context) (*abi.ABI, error) {
	return parseVocabulary(ctx, VocabularyABI)
}

func parseVocabulary(ctx context.Context, abiJSON string) (*abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, bsmsgs.MsgReconcileBadEventABI, err)
	}
	for _, name := range []string{EventStringTradeFailed, EventBytesTradeFailed} {
		if _, ok := parsed.Events[name]; !ok {
			return nil, i18n.NewError(ctx, bsmsgs.MsgReconcileMissingEvent, name)
		}
	}
	return &parsed, nil
}
