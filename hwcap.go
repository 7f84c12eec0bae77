package aescore

import "golang.org/x/sys/cpu"

// HardwareAvailable reports whether the CPU advertises AES acceleration.
//
// The reference backend never consults this; it runs everywhere. It exists
// for integrators of hardware-backed alternative backends, which must
// return ErrFeatureUnsupported per call when the capability is absent at
// runtime, and for diagnostics layers that want to surface that condition
// before the first failing call.
func HardwareAvailable() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
