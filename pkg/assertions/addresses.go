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
	"strings"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
)

// IsEqualAddress compares case-insensitively, so checksummed and lower case forms match
func (a *Assertions) IsEqualAddress(ctx context.Context, name1, address1, name2, address2 string) error {
	if !strings.EqualFold(address1, address2) {
		return apitypes.NewValidationError(ctx, name1+","+name2, []string{address1, address2}, CheckEqualAddress,
			bsmsgs.MsgAddressesNotEqual, name1, address1, name2, address2)
	}
	return nil
}

// IsDifferentAddress fails when both addresses are the same, ignoring case
func (a *Assertions) IsDifferentAddress(ctx context.Context, name1, address1, name2, address2 string) error {
	if strings.EqualFold(address1, address2) {
		return apitypes.NewValidationError(ctx, name1+","+name2, []string{address1, address2}, CheckDifferentAddress,
			bsmsgs.MsgAddressesNotDifferent, name1, name2, address1)
	}
	return nil
}

// IsSupportedChainID requires chainID to be in the allow-list given to New
func (a *Assertions) IsSupportedChainID(ctx context.Context, name string, chainID int64) error {
	for _, supported := range a.supportedChainIDs {
		if chainID == supported {
			return nil
		}
	}
	return apitypes.NewValidationError(ctx, name, chainID, CheckSupportedChainID, bsmsgs.MsgUnsupportedChainID, name, chainID, a.supportedChainIDs)
}
