// Package version reports pushgen build metadata.
//
// Values come from -ldflags when set and otherwise from the module build
// info embedded by the Go toolchain:
//
//	go build -ldflags "-X github.com/kbukum/pushgen/version.Version=1.2.0" ./cmd/pushgen
package version
