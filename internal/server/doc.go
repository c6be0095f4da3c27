// Package server wires and runs the reconciliation server's HTTP
// transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, graceful shutdown, and stopping registered background
// workers before the process exits.
package server
