// Package config provides configuration management for artstream.
//
// # Resolution Order
//
// Settings are resolved in three layers, later layers winning:
//
//  1. DefaultSettings()
//  2. JSON config file (Load)
//  3. ARTSTREAM_* environment variables (ApplyEnv)
//
// Command-line flags are applied by the front-ends on top of all three.
//
// # Usage
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // corrupt file; a missing file just yields defaults
//	}
//	if err := settings.ApplyEnv(); err != nil {
//	    // malformed environment value
//	}
//
// # Environment Variables
//
//	ARTSTREAM_DB                  comma-separated database paths
//	ARTSTREAM_INTERVAL            seconds between records
//	ARTSTREAM_STARTUP_PAUSE       seconds before the loop starts
//	ARTSTREAM_VERBOSE             true/false
//	ARTSTREAM_MAX_PARALLEL_LOADS  database load concurrency
//	ARTSTREAM_IMPORT_WIDTH        character width for imported images
//	ARTSTREAM_IMPORT_RAMP         light-to-dark character ramp
package config
