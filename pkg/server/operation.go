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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/blakeblackwell-persefoni/calcd/pkg/calculator"
	"github.com/blakeblackwell-persefoni/calcd/pkg/errors"
	"github.com/blakeblackwell-persefoni/calcd/pkg/serializer"
)

// handleOperation returns the handler for a single arithmetic operation.
// All three operation routes share this dispatch; only the Operation kind
// differs. The method allow-list has already run by the time this handler
// sees the request.
//
// Per-request state machine:
//  1. body read and parse, capped at MaxBodyBytes (terminal 400)
//  2. shape check, both operands present and numeric (terminal 400)
//  3. numeric validation and compute in the engine (terminal 400 / 200)
func (s *Server) handleOperation(op calculator.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, b, err := s.parseOperationRequest(w, r)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, errors.CodeOf(err), messageOf(err))
			return
		}

		result, err := s.engine.Apply(op, a, b)
		if err != nil {
			// The engine only fails on the finite-number precondition here;
			// the fixed message is part of the contract.
			s.writeError(w, r, http.StatusBadRequest, errors.CodeOf(err), messageOf(err))
			return
		}

		serializer.RespondJSON(w, http.StatusOK, calculator.OperationResponse{Result: result})
	}
}

// parseOperationRequest decodes the request body into a pair of operands.
// It enforces the body-size cap and rejects bodies that are not a JSON
// object carrying numeric "a" and "b" fields.
func (s *Server) parseOperationRequest(w http.ResponseWriter, r *http.Request) (a, b float64, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)

	var req calculator.OperationRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return 0, 0, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("request body exceeds %d bytes", s.config.MaxBodyBytes), err)
		}
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid request body: %v", err), err)
	}

	if req.A == nil || req.B == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidRequest,
			"invalid request body: numeric fields 'a' and 'b' are required")
	}

	return *req.A, *req.B, nil
}

// messageOf strips the structured-error prefix for the wire: clients see
// only the human-readable message, never codes or causes.
func messageOf(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
