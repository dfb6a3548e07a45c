// Package orca supervises a fixed set of external scripts and renders
// their live status as an in-place-updating terminal block.
package orca

// Version is the orca release version.
const Version = "0.3.1"
