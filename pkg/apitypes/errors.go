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
	"context"
	"math/big"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/ffcapi"
	"github.com/hyperledger/firefly-basket-sdk/pkg/schema"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// ValidationError is returned synchronously, before any call to the connector, when an
// input does not conform to a schema or invariant. It is never retried.
type ValidationError struct {
	Field     string               // the field (or comma separated fields) that failed
	Value     interface{}          // the offending value
	Violation string               // the schema ID or named check that was violated
	Failures  []*schema.FieldError // every element that failed, when a whole list was checked against a schema
	err       error
}

func NewValidationError(ctx context.Context, field string, value interface{}, violation string, msg i18n.ErrorMessageKey, inserts ...interface{}) *ValidationError {
	return &ValidationError{
		Field:     field,
		Value:     value,
		Violation: violation,
		err:       i18n.NewError(ctx, msg, inserts...),
	}
}

func (e *ValidationError) Error() string { return e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

// ExternalProviderError is any failure returned by the connector. The message is
// the connector's own, and the reason (when the connector classified the error) is
// retained so callers can decide whether to resubmit.
type ExternalProviderError struct {
	Reason ffcapi.ErrorReason
	err    error
}

func NewExternalProviderError(reason ffcapi.ErrorReason, err error) *ExternalProviderError {
	return &ExternalProviderError{Reason: reason, err: err}
}

func (e *ExternalProviderError) Error() string { return e.err.Error() }
func (e *ExternalProviderError) Unwrap() error { return e.err }

// ReconciliationInconsistencyError means a failure event referred to an operation
// index that was never submitted, so the receipt and the submitted list disagree.
type ReconciliationInconsistencyError struct {
	TransactionHash string
	Index           *big.Int
	OperationCount  int
	err             error
}

func NewReconciliationInconsistencyError(ctx context.Context, txHash string, index *big.Int, count int) *ReconciliationInconsistencyError {
	return &ReconciliationInconsistencyError{
		TransactionHash: txHash,
		Index:           index,
		OperationCount:  count,
		err:             i18n.NewError(ctx, bsmsgs.MsgReconcileIndexOutOfRange, txHash, index.String(), count),
	}
}

func (e *ReconciliationInconsistencyError) Error() string { return e.err.Error() }
func (e *ReconciliationInconsistencyError) Unwrap() error { return e.err }

// DecodeError means an opaque failure payload was reported for an operation, but the
// configured decoder could not turn it into a reason. The operation did fail.
type DecodeError struct {
	TransactionHash string
	Index           int
	Payload         []byte
	err             error
}

func NewDecodeError(ctx context.Context, txHash string, index int, payload []byte, cause error) *DecodeError {
	return &DecodeError{
		TransactionHash: txHash,
		Index:           index,
		Payload:         payload,
		err:             i18n.WrapError(ctx, cause, bsmsgs.MsgReconcileDecodeFailed, index, txHash, cause),
	}
}

func (e *DecodeError) Error() string { return e.err.Error() }
func (e *DecodeError) Unwrap() error { return e.err }
