// Package harness builds the pomo binary once and runs it against an
// isolated POMO_HOME per test.
//
// Environment variables managed:
//   - POMO_HOME: temp directory per test
//   - POMO_DEBUG: cleared so no log files are written
//   - POMO_*: everything else inherited from the caller is dropped
package harness
