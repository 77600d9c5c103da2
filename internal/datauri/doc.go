// Package datauri converts media files into inline data URIs so a packaged
// artifact carries its video, audio, and thumbnail without external file
// dependencies.
package datauri
