// Package report is the benchmarking and self-test harness around the three
// optimizers. It times one call per scenario, summarizes the results, and
// prints them in the classic plain-text layout; it also replays the small
// known cases and marks each PASS or FAIL.
//
// The harness owns no global state: every run gets its own Report (tagged
// with a fresh run id) and its own logger.
package report
