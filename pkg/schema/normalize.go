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

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// normalize converts the Go representations callers use for numbers, addresses and
// bytes into the JSON data model the schema engine evaluates
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, string, bool, float64, json.Number:
		return t
	case *big.Int:
		if t == nil {
			return nil
		}
		return json.Number(t.String())
	case *fftypes.FFBigInt:
		if t == nil {
			return nil
		}
		return json.Number(t.Int().String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return json.Number(fmt.Sprintf("%d", t))
	case float32:
		return float64(t)
	case common.Address:
		return t.Hex()
	case common.Hash:
		return t.Hex()
	case []byte:
		return hexutil.Encode(t)
	case hexutil.Bytes:
		return t.String()
	default:
		// Anything else goes through a JSON round trip, so it is evaluated exactly
		// as it would be serialized to the connector
		b, err := json.Marshal(t)
		if err != nil {
			return t
		}
		var generic interface{}
		d := json.NewDecoder(bytes.NewReader(b))
		d.UseNumber()
		if err := d.Decode(&generic); err != nil {
			return t
		}
		return generic
	}
}
