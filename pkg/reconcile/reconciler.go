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
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-basket-sdk/internal/metrics"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
)

// Reconciler maps the failure events in a batch trade receipt back onto the
// trades that were submitted, producing one outcome per trade in submission order.
type Reconciler interface {
	Reconcile(ctx context.Context, txHash string, logs []*apitypes.LogEntry, trades []*apitypes.TradeInstruction, decoder ErrorDecoder) ([]*apitypes.OutcomeRecord, error)
}

type Option func(r *reconciler)

// WithEmitter restricts reconciliation to logs emitted by the given contract.
func WithEmitter(address common.Address) Option {
	return func(r *reconciler) {
		r.emitter = &address
	}
}

type reconciler struct {
	metrics    metrics.Metrics
	vocabulary *abi.ABI
	emitter    *common.Address
}

type tradeFailure struct {
	event    *abi.Event
	setToken common.Address
	index    *big.Int
	reason   interface{}
}

func NewReconciler(ctx context.Context, m metrics.Metrics, opts ...Option) (Reconciler, error) {
	vocabulary, err := Vocabulary(ctx)
	if err != nil {
		return nil, err
	}
	r := &reconciler{
		metrics:    m,
		vocabulary: vocabulary,
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

func (r *reconciler) Reconcile(ctx context.Context, txHash string, logs []*apitypes.LogEntry, trades []*apitypes.TradeInstruction, decoder ErrorDecoder) ([]*apitypes.OutcomeRecord, error) {
	startTime := time.Now()
	ctx = log.WithLogger(ctx, log.L(ctx).WithFields(logrus.Fields{"tx": txHash}))
	if decoder == nil {
		decoder = RevertStringDecoder
	}

	outcomes := make([]*apitypes.OutcomeRecord, len(trades))
	for i, trade := range trades {
		outcomes[i] = &apitypes.OutcomeRecord{Success: true, Trade: trade}
	}

	for logPos, entry := range logs {
		failure := r.matchFailure(ctx, logPos, entry)
		if failure == nil {
			continue
		}
		if !failure.index.IsInt64() || failure.index.Int64() >= int64(len(trades)) {
			err := apitypes.NewReconciliationInconsistencyError(ctx, txHash, failure.index, len(trades))
			log.L(ctx).Errorf("%s", err)
			return nil, err
		}
		idx := int(failure.index.Int64())
		opCtx := log.WithLogger(ctx, log.L(ctx).WithField("op", idx))

		var reason string
		switch rt := failure.reason.(type) {
		case string:
			reason = rt
		case []byte:
			decoded, err := decoder.DecodeError(opCtx, rt)
			if err != nil {
				decodeErr := apitypes.NewDecodeError(opCtx, txHash, idx, rt, err)
				log.L(opCtx).Errorf("%s", decodeErr)
				return nil, decodeErr
			}
			reason = decoded
		}
		log.L(opCtx).Debugf("Trade failed (%s) setToken=%s: %s", failure.event.Name, failure.setToken, reason)
		outcomes[idx].Success = false
		outcomes[idx].RevertReason = reason
	}

	for _, o := range outcomes {
		if o.Success {
			r.metrics.CountReconciledOutcome(ctx, metrics.OutcomeSuccess)
		} else {
			r.metrics.CountReconciledOutcome(ctx, metrics.OutcomeFailed)
		}
	}
	r.metrics.ObserveReconcileDuration(ctx, time.Since(startTime))
	return outcomes, nil
}

// matchFailure returns nil for any log that is not a failure event from the
// expected emitter. Logs that match an event signature but cannot be parsed
// are skipped with a warning.
func (r *reconciler) matchFailure(ctx context.Context, logPos int, entry *apitypes.LogEntry) *tradeFailure {
	if entry == nil || len(entry.Topics) == 0 {
		r.skip(ctx, metrics.SkipUnrelated)
		return nil
	}
	event, err := r.vocabulary.EventByID(entry.Topics[0])
	if err != nil {
		log.L(ctx).Debugf("Skipping log %d with unrelated signature %s", logPos, entry.Topics[0])
		r.skip(ctx, metrics.SkipUnrelated)
		return nil
	}
	if r.emitter != nil && entry.Address != *r.emitter {
		log.L(ctx).Debugf("Skipping %s log %d from %s (expected %s)", event.Name, logPos, entry.Address, r.emitter)
		r.skip(ctx, metrics.SkipForeignEmitter)
		return nil
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	values := make(map[string]interface{})
	if err := abi.ParseTopicsIntoMap(values, indexed, entry.Topics[1:]); err != nil {
		log.L(ctx).Warnf("Skipping unparseable %s log %d: %s", event.Name, logPos, err)
		r.skip(ctx, metrics.SkipUnparseable)
		return nil
	}
	if err := r.vocabulary.UnpackIntoMap(values, event.Name, entry.Data); err != nil {
		log.L(ctx).Warnf("Skipping unparseable %s log %d: %s", event.Name, logPos, err)
		r.skip(ctx, metrics.SkipUnparseable)
		return nil
	}

	setToken, _ := values[argSetToken].(common.Address)
	index, ok := values[argIndex].(*big.Int)
	if !ok {
		log.L(ctx).Warnf("Skipping %s log %d without an index", event.Name, logPos)
		r.skip(ctx, metrics.SkipUnparseable)
		return nil
	}
	return &tradeFailure{
		event:    event,
		setToken: setToken,
		index:    index,
		reason:   values[argReason],
	}
}

func (r *reconciler) skip(ctx context.Context, reason string) {
	r.metrics.CountSkippedLog(ctx, reason)
}
