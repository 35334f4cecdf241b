// Package workflow implements Temporal workflow definitions for skyangle.
//
// Workflows coordinate conversion activities; they hold no conversion logic
// themselves. All code here must stay deterministic: no wall-clock time,
// randomness or I/O outside the workflow APIs.
package workflow
