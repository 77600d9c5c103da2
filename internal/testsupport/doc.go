// Package testsupport provides shared fixtures for vidpack tests: temp-backed
// configurations, stub external binaries, and sample media files.
package testsupport
