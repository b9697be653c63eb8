// Package server implements the HTTP dispatcher for the calcd arithmetic
// API.
//
// # Surface
//
//	POST /add       {"a":number,"b":number} -> 200 {"result":number}
//	POST /subtract  {"a":number,"b":number} -> 200 {"result":number}
//	POST /multiply  {"a":number,"b":number} -> 200 {"result":number}
//	GET  /health    -> 200 {"status":"ok"}
//	GET  /ready     -> 200 {"status":"ok"} | 503 {"status":"starting"}
//	GET  /metrics   -> Prometheus exposition
//
// Any other path returns 404 {"error":"Not found"}; a wrong method on a
// known path returns 405 {"error":"Method not allowed"} before the body is
// read. Malformed JSON, missing or non-numeric fields, bodies over 1 MiB,
// and non-finite operands all return 400 with the {"error": string}
// envelope. All responses carry Content-Type: application/json.
//
// # Dispatch
//
// Each request walks a fixed state machine: method allow-list, body read
// and parse under the size cap, shape check, then the operation engine's
// finite-number validation and compute. Errors are terminal at each step;
// a request fully succeeds or fully fails with exactly one error kind.
//
// # Construction
//
// The dispatcher is an explicit value built once at process start and
// handed to the transport listener; there is no package-level framework
// instance:
//
//	s := server.New(
//	    server.WithName("calcd"),
//	    server.WithVersion(version),
//	)
//	if err := s.Run(ctx); err != nil { ... }
//
// Run blocks until SIGINT/SIGTERM, then drains in-flight requests within
// the configured shutdown timeout.
//
// # Concurrency
//
// Request handling is fully stateless: no shared mutable state exists
// between requests, so the server relies on net/http's
// goroutine-per-request model without additional coordination. The only
// synchronized state is the readiness flag.
package server
