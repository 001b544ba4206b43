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
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

const selectorLength = 4

var (
	revertSelector = crypto.Keccak256([]byte("Error(string)"))[:selectorLength]
	panicSelector  = crypto.Keccak256([]byte("Panic(uint256)"))[:selectorLength]
)

// ErrorDecoder turns the opaque payload of a BytesTradeFailed event into a
// human readable reason.
type ErrorDecoder interface {
	DecodeError(ctx context.Context, payload []byte) (string, error)
}

type ErrorDecoderFunc func(ctx context.Context, payload []byte) (string, error)

func (f ErrorDecoderFunc) DecodeError(ctx context.Context, payload []byte) (string, error) {
	return f(ctx, payload)
}

// RevertStringDecoder understands the standard Error(string) revert encoding,
// and the Panic(uint256) encoding the compiler emits for failed assertions.
var RevertStringDecoder ErrorDecoder = ErrorDecoderFunc(decodeRevertString)

func decodeRevertString(ctx context.Context, payload []byte) (string, error) {
	if len(payload) < selectorLength {
		return "", i18n.NewError(ctx, bsmsgs.MsgRevertPayloadTooShort, len(payload))
	}
	selector := payload[:selectorLength]
	if !bytes.Equal(selector, revertSelector) && !bytes.Equal(selector, panicSelector) {
		return "", i18n.NewError(ctx, bsmsgs.MsgRevertPayloadUnknown, hexutil.Encode(selector))
	}
	reason, err := abi.UnpackRevert(payload)
	if err != nil {
		return "", i18n.NewError(ctx, bsmsgs.MsgRevertPayloadInvalid, "Error", err)
	}
	return reason, nil
}

type abiErrorDecoder struct {
	errors map[string]abi.Error
}

// NewABIErrorDecoder builds a decoder for the custom errors declared in a
// contract ABI. Custom errors render as Name(arg=value,...), and anything else
// falls back to RevertStringDecoder.
func NewABIErrorDecoder(ctx context.Context, abiJSON string) (ErrorDecoder, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, bsmsgs.MsgBadErrorABI, err)
	}
	d := &abiErrorDecoder{errors: make(map[string]abi.Error, len(parsed.Errors))}
	for _, e := range parsed.Errors {
		d.errors[hexutil.Encode(e.ID[:selectorLength])] = e
	}
	log.L(ctx).Debugf("Custom error decoder loaded with %d errors", len(d.errors))
	return d, nil
}

func (d *abiErrorDecoder) DecodeError(ctx context.Context, payload []byte) (string, error) {
	if len(payload) < selectorLength {
		return "", i18n.NewError(ctx, bsmsgs.MsgRevertPayloadTooShort, len(payload))
	}
	e, ok := d.errors[hexutil.Encode(payload[:selectorLength])]
	if !ok {
		return decodeRevertString(ctx, payload)
	}
	values, err := e.Inputs.Unpack(payload[selectorLength:])
	if err != nil {
		return "", i18n.NewError(ctx, bsmsgs.MsgRevertPayloadInvalid, e.Name, err)
	}
	args := make([]string, len(values))
	for i, v := range values {
		rendered := formatErrorArg(v)
		if e.Inputs[i].Name != "" {
			rendered = fmt.Sprintf("%s=%s", e.Inputs[i].Name, rendered)
		}
		args[i] = rendered
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ",")), nil
}

func formatErrorArg(v interface{}) string {
	switch vt := v.(type) {
	case []byte:
		return hexutil.Encode(vt)
	case [32]byte:
		return hexutil.Encode(vt[:])
	case fmt.Stringer:
		return vt.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
