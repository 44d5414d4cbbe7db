// Package logging provides structured diagnostics for devscan.
//
// This package wraps a global zap logger. It is silent by default so the
// scan prompt and results stay clean; set DEVSCAN_LOG_LEVEL (or pass
// --log-level) to "debug", "info", "warn" or "error" to enable it.
//
// Log output goes to stderr in zap's console format, which keeps it
// separate from the scan results written to stdout:
//
//	2026-10-16T10:30:45.123+0200  INFO  inventory loaded
//	  path=hp_laptops.csv  records=412  skipped=3
//
// # Usage
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogScan("100200", true)
package logging
