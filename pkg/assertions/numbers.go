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

package assertions

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

func (a *Assertions) compare(ctx context.Context, check, name string, value, bound *big.Int, ok func(cmp int) bool, msg i18n.ErrorMessageKey) error {
	if value == nil {
		return apitypes.NewValidationError(ctx, name, value, check, bsmsgs.MsgMissingNumber, name)
	}
	if bound == nil {
		return apitypes.NewValidationError(ctx, name, value, check, bsmsgs.MsgMissingBound, name)
	}
	if !ok(value.Cmp(bound)) {
		return apitypes.NewValidationError(ctx, name, value, check, msg, name, bound.String(), value.String())
	}
	return nil
}

// IsGreaterThan fails unless value > min
func (a *Assertions) IsGreaterThan(ctx context.Context, name string, value, min *big.Int) error {
	return a.compare(ctx, CheckGreaterThan, name, value, min, func(c int) bool { return c > 0 }, bsmsgs.MsgNotGreaterThan)
}

// IsGreaterOrEqualThan fails unless value >= min
func (a *Assertions) IsGreaterOrEqualThan(ctx context.Context, name string, value, min *big.Int) error {
	return a.compare(ctx, CheckGreaterOrEqualThan, name, value, min, func(c int) bool { return c >= 0 }, bsmsgs.MsgNotGreaterOrEqual)
}

// IsLessOrEqualThan fails unless value <= max
func (a *Assertions) IsLessOrEqualThan(ctx context.Context, name string, value, max *big.Int) error {
	return a.compare(ctx, CheckLessOrEqualThan, name, value, max, func(c int) bool { return c <= 0 }, bsmsgs.MsgNotLessOrEqual)
}

// IsEqualBigNumber fails unless value == expected
func (a *Assertions) IsEqualBigNumber(ctx context.Context, name string, value, expected *big.Int) error {
	return a.compare(ctx, CheckEqualBigNumber, name, value, expected, func(c int) bool { return c == 0 }, bsmsgs.MsgNotEqualNumber)
}

// IsMultipleOf fails unless divisor divides value exactly. A zero divisor always fails.
func (a *Assertions) IsMultipleOf(ctx context.Context, name string, value, divisor *big.Int) error {
	if value == nil {
		return apitypes.NewValidationError(ctx, name, value, CheckMultipleOf, bsmsgs.MsgMissingNumber, name)
	}
	if divisor == nil {
		return apitypes.NewValidationError(ctx, name, value, CheckMultipleOf, bsmsgs.MsgMissingBound, name)
	}
	if divisor.Sign() == 0 || new(big.Int).Rem(value, divisor).Sign() != 0 {
		return apitypes.NewValidationError(ctx, name, value, CheckMultipleOf, bsmsgs.MsgNotMultipleOf, name, divisor.String(), value.String())
	}
	return nil
}
