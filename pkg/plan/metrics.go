// Copyright 2025 The Kestrel Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import "github.com/prometheus/client_golang/prometheus"

// A nonzero "version" or "taxonomy" count is the signature of protocol skew
// between nodes and should page before queries start returning wrong joins.
var fragmentDecodeErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "kestrel",
		Subsystem: "plan",
		Name:      "fragment_decode_errors_total",
		Help:      "Join plan fragment decode failures by cause.",
	},
	[]string{"cause"},
)

func init() {
	prometheus.MustRegister(fragmentDecodeErrors)
}
