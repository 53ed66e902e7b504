//go:build debug

package version

const debugBuild = true
