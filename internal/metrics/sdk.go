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
	"github.com/prometheus/client_golang/prometheus"
)

var ValidationFailures *prometheus.CounterVec
var ReconciledOperations *prometheus.CounterVec
var SkippedLogs *prometheus.CounterVec
var ReconcileDuration prometheus.Histogram

var MetricsValidationFailures = "ff_basket_validation_failures_total"
var MetricsReconciledOperations = "ff_basket_reconciled_operations_total"
var MetricsSkippedLogs = "ff_basket_skipped_logs_total"
var MetricsReconcileDuration = "ff_basket_reconcile_duration_seconds"

func InitSDKMetrics() {
	ValidationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsValidationFailures,
		Help: "Number of operations rejected before submission, by the check that failed",
	}, []string{"check"})
	ReconciledOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsReconciledOperations,
		Help: "Number of batch sub-operations reconciled, by outcome",
	}, []string{"outcome"})
	SkippedLogs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricsSkippedLogs,
		Help: "Number of receipt logs ignored during reconciliation, by reason",
	}, []string{"reason"})
	ReconcileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricsReconcileDuration,
		Help:    "Time spent reconciling the logs of a batch transaction",
		Buckets: prometheus.DefBuckets,
	})
}

func RegisterSDKMetrics() {
	registry.MustRegister(ValidationFailures)
	registry.MustRegister(ReconciledOperations)
	registry.MustRegister(SkippedLogs)
	registry.MustRegister(ReconcileDuration)
}
