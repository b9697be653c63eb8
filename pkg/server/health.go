// Copyright (c) 2025, Persefoni.  All rights reserved.
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

package server

import (
	"net/http"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
	"github.com/blakeblackwell-persefoni/calcd/pkg/serializer"
)

const (
	healthStatusOK       = "ok"
	healthStatusStarting = "starting"
)

// handleHealth handles GET /health. Liveness has no validation beyond the
// method allow-list; the body is the fixed {"status":"ok"}.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, calculator.HealthResponse{Status: healthStatusOK})
}

// handleReady handles GET /ready. Unlike liveness, readiness reports 503
// until the listener has been started and after shutdown begins.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable,
			calculator.HealthResponse{Status: healthStatusStarting})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, calculator.HealthResponse{Status: healthStatusOK})
}
