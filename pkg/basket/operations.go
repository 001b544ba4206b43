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
	"context"
	"fmt"
	"math/big"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
)

func (c *client) CreateSetToken(ctx context.Context, components []string, units []*big.Int, modules []string, manager, name, symbol, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := []error{
		c.assert.IsNotEmptyArray(ctx, "components", components),
		c.assert.IsValidAddressList(ctx, "components", components),
		c.assert.IsUniqueList(ctx, "components", components),
		c.assert.IsEqualLength(ctx, "components", components, "units", units),
	}
	for i, u := range units {
		checks = append(checks, c.assert.IsGreaterThan(ctx, fmt.Sprintf("units[%d]", i), u, big.NewInt(0)))
	}
	checks = append(checks,
		c.assert.IsNotEmptyArray(ctx, "modules", modules),
		c.assert.IsValidAddressList(ctx, "modules", modules),
		c.assert.IsUniqueList(ctx, "modules", modules),
		c.assert.IsValidAddress(ctx, "manager", manager),
		c.assert.IsValidString(ctx, "name", name),
		c.assert.IsValidString(ctx, "symbol", symbol),
	)
	checks = append(checks, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	to, err := c.contract(ctx, bsconfig.ContractsSetTokenCreator)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, createSetTokenMethod, to, from, []interface{}{
		components, decimalStrings(units), modules, manager, name, symbol,
	}, overrides)
}

func (c *client) Issue(ctx context.Context, setToken string, quantity *big.Int, to, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	return c.issuance(ctx, issueMethod, setToken, quantity, to, from, overrides)
}

func (c *client) Redeem(ctx context.Context, setToken string, quantity *big.Int, to, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	return c.issuance(ctx, redeemMethod, setToken, quantity, to, from, overrides)
}

func (c *client) issuance(ctx context.Context, method *methodSpec, setToken string, quantity *big.Int, to, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := append([]error{
		c.assert.IsValidAddress(ctx, "setToken", setToken),
		c.assert.IsGreaterThan(ctx, "quantity", quantity, big.NewInt(0)),
		c.assert.IsValidAddress(ctx, "to", to),
	}, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	module, err := c.contract(ctx, bsconfig.ContractsBasicIssuanceModule)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, method, module, from, []interface{}{setToken, quantity.String(), to}, overrides)
}

func (c *client) UpdateStreamingFee(ctx context.Context, setToken string, newFeePercentage *big.Int, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := append([]error{
		c.assert.IsValidAddress(ctx, "setToken", setToken),
		c.assert.IsGreaterOrEqualThan(ctx, "newFeePercentage", newFeePercentage, big.NewInt(0)),
		c.assert.IsLessOrEqualThan(ctx, "newFeePercentage", newFeePercentage, c.maxStreamingFee),
	}, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	module, err := c.contract(ctx, bsconfig.ContractsStreamingFeeModule)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, updateStreamingFeeMethod, module, from, []interface{}{setToken, newFeePercentage.String()}, overrides)
}

func (c *client) AccrueFee(ctx context.Context, setToken, from string, overrides *apitypes.TxOverrides) (*apitypes.TransactionHandle, error) {
	from = c.resolveFrom(from)
	checks := append([]error{
		c.assert.IsValidAddress(ctx, "setToken", setToken),
	}, c.txChecks(ctx, from, overrides)...)
	if err := c.validate(ctx, checks...); err != nil {
		return nil, err
	}
	module, err := c.contract(ctx, bsconfig.ContractsStreamingFeeModule)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, accrueFeeMethod, module, from, []interface{}{setToken}, overrides)
}
