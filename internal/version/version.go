// Package version contains the gatecrawl engine version string.
package version

// Version is the current version of the gatecrawl engine.
const Version = "v0.1.0-dev"
