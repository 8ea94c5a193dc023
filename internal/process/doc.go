// Package process runs external tools (git, stack, cargo) on behalf of the
// updater.
//
// Runner is the narrow seam between the update logic and the operating
// system: ExecRunner spawns real processes, tests substitute a recorder.
// Check turns raw outcomes into ExternalCommandError or SpawnError, which
// callers can tell apart with errors.As.
package process
