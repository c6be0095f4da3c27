// SPDX-License-Identifier: Apache-2.0

// Package device implements the field-device agent runtime.
//
// It wires the local store, the server adapter, and the device services
// into a single process lifecycle and exposes the agent's commands:
// recording visits, running the background sync loop, forcing a sync
// attempt, and inspecting the local queue, history, and quarantine.
package device
