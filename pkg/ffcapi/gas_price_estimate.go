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

package ffcapi

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// GasPriceEstimateRequest used to do a query for the next gas price
type GasPriceEstimateRequest struct {
	RequestBase
}

// GasPriceEstimateResponse is the response with the gas price, which is passed back unchanged
// on any transaction submitted by the SDK
type GasPriceEstimateResponse struct {
	ResponseBase
	GasPrice *fftypes.JSONAny `json:"gasPrice"`
}

const RequestTypeGasPriceEstimate RequestType = "get_gas_price"

func (r *GasPriceEstimateRequest) RequestType() RequestType {
	return RequestTypeGasPriceEstimate
}

func (a *api) GasPriceEstimate(ctx context.Context, req *GasPriceEstimateRequest) (*GasPriceEstimateResponse, ErrorReason, error) {
	res := &GasPriceEstimateResponse{}
	reason, err := a.invokeAPI(ctx, req, res)
	if err != nil {
		return nil, reason, err
	}
	return res, "", nil
}
