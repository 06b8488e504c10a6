// Package config provides configuration management for mvn-downloader.
//
// This package handles:
//   - Loading settings from a config file and MVNDL_* environment variables
//   - Default configuration values
//   - Saving settings as JSON
//   - Conversion to the option structs of other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Archives go to <executable dir>/downloads
//	// TLS verification enabled
//	// Artifacts resolved against Maven Central
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // malformed file
//	}
//
// A missing file is not an error; defaults plus environment overrides are
// returned. Environment variables use the MVNDL prefix with "_" in place
// of ".", for example MVNDL_VERIFY_TLS=false or MVNDL_LOG_LEVEL=debug.
//
// # Saving Settings
//
//	settings.OutputDir = "/srv/artifacts"
//	err := settings.Save("/path/to/config.json")
package config
