//go:build tools
// +build tools

// Package tools pins the development tooling used while working on the
// dashboard. Nothing here is a runtime dependency; install each tool
// with `go install` as noted below.
package tools

// Live reload during template and handler work:
//
//	go install github.com/air-verse/air@v1.63.0
//
// Mock regeneration runs through `go generate ./internal/mocks`, which
// invokes mockgen via `go run` so no separate install is needed.
