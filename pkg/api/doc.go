// Package api wires logging, configuration, and the HTTP dispatcher into
// a runnable calcd daemon. It is the composition root used by cmd/calcd.
package api
