// Package batch drives a whole encrypt or decrypt run: scanning for
// candidates, validating access, handling dry runs and confirmation,
// acquiring the key, processing files one at a time, and reporting.
//
// Files are processed strictly sequentially. Each file is either fully
// transformed or untouched, so a halted or interrupted batch is always a
// clean prefix of the candidate list.
package batch
