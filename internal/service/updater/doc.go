// Package updater keeps the rain-ml and rain-vm working copies under
// $HOME/.rain up to date and rebuilds their binaries.
//
// An update runs strictly in order: create the root directory, sync rain-ml,
// sync rain-vm, install rain-ml with stack into root/bin, install rain-vm with
// cargo into root. The first failure stops the run and is returned unchanged.
// Nothing is rolled back: re-running pulls instead of cloning and reinstalls
// with --force, so a retry converges to the same end state.
package updater
