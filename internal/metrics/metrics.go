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

package metrics

import (
	"context"
	"time"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsconfig"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"

	SkipUnrelated      = "unrelated"
	SkipUnparseable    = "unparseable"
	SkipForeignEmitter = "foreign_emitter"
)

type metricsManager struct {
	metricsEnabled bool
}

// NewMetricsManager returns a manager that emits to the Registry when metrics are
// enabled in config, and does nothing otherwise
func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		metricsEnabled: config.GetBool(bsconfig.MetricsEnabled),
	}
	if mm.metricsEnabled {
		Registry()
		log.L(ctx).Debugf("SDK metrics enabled")
	}
	return mm
}

type Metrics interface {
	IsMetricsEnabled() bool
	CountValidationFailure(ctx context.Context, check string)
	CountReconciledOutcome(ctx context.Context, outcome string)
	CountSkippedLog(ctx context.Context, reason string)
	ObserveReconcileDuration(ctx context.Context, d time.Duration)
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) CountValidationFailure(_ context.Context, check string) {
	if mm.metricsEnabled {
		ValidationFailures.WithLabelValues(check).Inc()
	}
}

func (mm *metricsManager) CountReconciledOutcome(_ context.Context, outcome string) {
	if mm.metricsEnabled {
		ReconciledOperations.WithLabelValues(outcome).Inc()
	}
}

func (mm *metricsManager) CountSkippedLog(_ context.Context, reason string) {
	if mm.metricsEnabled {
		SkippedLogs.WithLabelValues(reason).Inc()
	}
}

func (mm *metricsManager) ObserveReconcileDuration(_ context.Context, d time.Duration) {
	if mm.metricsEnabled {
		ReconcileDuration.Observe(d.Seconds())
	}
}
