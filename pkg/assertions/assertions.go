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

// Package assertions is the set of named input checks that every outward-facing
// SDK operation runs before it builds or submits a transaction. Every check is pure
// and synchronous, and fails with an *apitypes.ValidationError naming the field.
package assertions

import (
	"context"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-basket-sdk/pkg/schema"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Names of the checks, recorded as the violation on a ValidationError
const (
	CheckValidAddress       = "isValidAddress"
	CheckValidAddressList   = "isValidAddressList"
	CheckValidBytes         = "isValidBytes"
	CheckValidBytes32       = "isValidBytes32"
	CheckValidNumber        = "isValidNumber"
	CheckValidWholeNumber   = "isValidWholeNumber"
	CheckValidString        = "isValidString"
	CheckEqualLength        = "isEqualLength"
	CheckNotEmptyArray      = "isNotEmptyArray"
	CheckUniqueList         = "isUniqueList"
	CheckGreaterThan        = "isGreaterThan"
	CheckGreaterOrEqualThan = "isGreaterOrEqualThan"
	CheckLessOrEqualThan    = "isLessOrEqualThan"
	CheckMultipleOf         = "isMultipleOf"
	CheckEqualBigNumber     = "isEqualBigNumber"
	CheckEqualAddress       = "isEqualAddress"
	CheckDifferentAddress   = "isDifferentAddress"
	CheckSupportedChainID   = "isSupportedChainId"
)

// Assertions runs the named checks. It is stateless after construction and safe for concurrent use.
type Assertions struct {
	validator         schema.Validator
	supportedChainIDs []int64
}

// New builds the facade over a schema validator. The supported chain IDs are the
// allow-list for IsSupportedChainID.
func New(validator schema.Validator, supportedChainIDs []int64) *Assertions {
	return &Assertions{
		validator:         validator,
		supportedChainIDs: supportedChainIDs,
	}
}

func (a *Assertions) schemaCheck(ctx context.Context, name string, value interface{}, id schema.ID, check string, msg i18n.ErrorMessageKey) error {
	res := a.validator.Validate(ctx, name, value, id)
	if res.Valid() {
		return nil
	}
	ve := apitypes.NewValidationError(ctx, name, value, check, msg, name, value)
	ve.Failures = res.Errors
	return ve
}

// IsValidAddress requires a 0x prefixed, 20 byte hex address. Checksum case is not enforced.
func (a *Assertions) IsValidAddress(ctx context.Context, name string, address string) error {
	return a.schemaCheck(ctx, name, address, schema.Address, CheckValidAddress, bsmsgs.MsgInvalidAddress)
}

// IsValidAddressList checks every entry, and the error reports every failing entry.
// An empty list is valid, so pair with IsNotEmptyArray where at least one is needed.
func (a *Assertions) IsValidAddressList(ctx context.Context, name string, addresses []string) error {
	res := a.validator.ValidateList(ctx, name, addresses, schema.Address)
	if res.Valid() {
		return nil
	}
	first := res.First()
	ve := apitypes.NewValidationError(ctx, first.Field, first.Value, CheckValidAddressList, bsmsgs.MsgInvalidAddress, first.Field, first.Value)
	ve.Failures = res.Errors
	return ve
}

// IsValidBytes requires a 0x prefixed hex string of whole bytes. "0x" is valid.
func (a *Assertions) IsValidBytes(ctx context.Context, name string, value string) error {
	return a.schemaCheck(ctx, name, value, schema.Bytes, CheckValidBytes, bsmsgs.MsgInvalidBytes)
}

// IsValidBytes32 requires exactly 32 bytes of 0x prefixed hex
func (a *Assertions) IsValidBytes32(ctx context.Context, name string, value string) error {
	return a.schemaCheck(ctx, name, value, schema.Bytes32, CheckValidBytes32, bsmsgs.MsgInvalidBytes32)
}

// IsValidNumber accepts big integers, integral Go numeric values, and decimal or 0x hex integer strings
func (a *Assertions) IsValidNumber(ctx context.Context, name string, value interface{}) error {
	return a.schemaCheck(ctx, name, value, schema.Number, CheckValidNumber, bsmsgs.MsgInvalidNumber)
}

// IsValidWholeNumber requires a non-negative integer
func (a *Assertions) IsValidWholeNumber(ctx context.Context, name string, value interface{}) error {
	return a.schemaCheck(ctx, name, value, schema.WholeNumber, CheckValidWholeNumber, bsmsgs.MsgInvalidWholeNumber)
}

// IsValidString requires at least one non-whitespace character
func (a *Assertions) IsValidString(ctx context.Context, name string, value string) error {
	res := a.validator.Validate(ctx, name, value, schema.String)
	if res.Valid() {
		return nil
	}
	ve := apitypes.NewValidationError(ctx, name, value, CheckValidString, bsmsgs.MsgInvalidString, name)
	ve.Failures = res.Errors
	return ve
}

// IsValidSchema checks a value against any registered schema, including those
// registered beyond the built-in set
func (a *Assertions) IsValidSchema(ctx context.Context, name string, value interface{}, id schema.ID) error {
	res := a.validator.Validate(ctx, name, value, id)
	if res.Valid() {
		return nil
	}
	ve := apitypes.NewValidationError(ctx, name, value, string(id), bsmsgs.MsgSchemaNonConformant, name, id, res.First().Message)
	ve.Failures = res.Errors
	return ve
}
