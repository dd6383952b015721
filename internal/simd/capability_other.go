//go:build !amd64 && !arm64

package simd

func init() {
	// No lane registers are probed on other architectures.
	initCapabilities()
}
