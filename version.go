// Package solidified holds build metadata for the solidified CLI.
package solidified

// Version is the CLI release version.
const Version = "0.1.0"
