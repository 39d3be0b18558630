// Package cli provides the interactive HealthDash command-line client.
//
// It wires configuration, the local session store, the identity-provider
// gateway and the backend API into an interactive REPL. Typical flow: sign
// up, confirm the email, log in, then view or edit the health profile and
// upload a supporting document.
//
// Key features:
//   - Signup / Confirm / Login / Logout against the managed identity provider
//   - Show and edit the per-user health profile
//   - Upload a profile document with client-side size and type checks
//   - Backend liveness probe
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
