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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var regMux sync.Mutex
var registry *prometheus.Registry

// Registry returns the SDK's customized Prometheus registry, which an application
// can expose on its own metrics endpoint
func Registry() *prometheus.Registry {
	regMux.Lock()
	defer regMux.Unlock()
	if registry == nil {
		initMetricsCollectors()
		registry = prometheus.NewRegistry()
		registerMetricsCollectors()
	}

	return registry
}

// Clear will reset the Prometheus metrics registry, useful for testing
func Clear() {
	regMux.Lock()
	defer regMux.Unlock()
	registry = nil
}

func initMetricsCollectors() {
	InitSDKMetrics()
}

func registerMetricsCollectors() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	RegisterSDKMetrics()
}
