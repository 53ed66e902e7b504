//go:build !debug

package version

const debugBuild = false
