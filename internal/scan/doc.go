// Package scan discovers the candidate files for a batch operation and
// validates access to them before anything is modified.
//
// Discovery never follows symbolic links, skips hidden files unless asked
// not to, and returns candidates in a deterministic order. Validation
// probes each candidate for read and write access so permission problems
// surface up front instead of midway through a batch.
package scan
