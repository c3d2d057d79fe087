// Package constants provides centralized constant values used throughout tickr.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Application identity.
const (
	// AppName is the binary and command name.
	AppName = "tickr"

	// EnvPrefix is the prefix for environment variable configuration
	// (e.g. TICKR_VERBOSE, TICKR_NO_COLOR).
	EnvPrefix = "TICKR"
)

// Directory and file names used by tickr for logs.
const (
	// TickrHome is the hidden directory name where tickr stores its data.
	// This directory is created in the user's home directory.
	TickrHome = ".tickr"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// LogFileName is the name of the rotating CLI log file.
	LogFileName = "tickr.log"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 5

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// Clock surface defaults, used until the terminal reports its real size.
const (
	// DefaultSurfaceWidth is the assumed surface width in cells.
	DefaultSurfaceWidth = 80

	// DefaultSurfaceHeight is the assumed surface height in rows.
	DefaultSurfaceHeight = 24
)

// TickInterval is the nominal period between published time values. The time
// keeper phase-aligns to second boundaries, so actual sleeps are shorter.
const TickInterval = time.Second
