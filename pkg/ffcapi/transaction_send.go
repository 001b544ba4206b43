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

import "context"

// TransactionSendRequest is used to send a transaction to the blockchain.
//
// The connector is responsible for encoding the method and params, signing with
// the "from" identity, adding it to the transaction pool of the blockchain,
// and returning the hash for the transaction.
//
// If "gas" is not supplied, the connector is expected to perform gas estimation
// prior to submission.
//
// See the list of standard error reasons that should be returned for situations that can be
// detected by the back-end connector.
type TransactionSendRequest struct {
	RequestBase
	TransactionInput
}

type TransactionSendResponse struct {
	ResponseBase
	TransactionHash string `json:"transactionHash"`
}

const RequestTypeTransactionSend RequestType = "send_transaction"

func (r *TransactionSendRequest) RequestType() RequestType {
	return RequestTypeTransactionSend
}

func (a *api) TransactionSend(ctx context.Context, req *TransactionSendRequest) (*TransactionSendResponse, ErrorReason, error) {
	res := &TransactionSendResponse{}
	reason, err := a.invokeAPI(ctx, req, res)
	if err != nil {
		return nil, reason, err
	}
	return res, "", nil
}
