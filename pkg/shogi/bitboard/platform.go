package bitboard

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Capability names which algorithm family backs a bit-scan primitive on this
// process.
type Capability uint8

const (
	// Software is the fully portable shift/loop implementation.
	Software Capability = iota
	// BitParallel is the portable bit-parallel implementation: SWAR
	// (SIMD-within-a-register) for popcount, De Bruijn multiplication for
	// bit scans.
	BitParallel
	// Hardware is the CPU-intrinsic-backed implementation (POPCNT/BMI1/CLZ),
	// reached via math/bits, which the Go compiler lowers to a native
	// instruction when the target supports it.
	Hardware
)

func (c Capability) String() string {
	switch c {
	case Software:
		return "software"
	case BitParallel:
		return "bit-parallel"
	case Hardware:
		return "hardware"
	default:
		return "?"
	}
}

// PlatformCapabilities records which popcount/bit-scan implementation family
// is preferred on this process. It is computed once, on first use, and is
// immutable and safe for lock-free concurrent reads thereafter.
type PlatformCapabilities struct {
	Popcount Capability
	BitScan  Capability
}

var (
	platformOnce sync.Once
	platform     PlatformCapabilities
)

// DetectPlatformCapabilities returns the process-wide PlatformCapabilities
// singleton, probing CPU features on first call.
func DetectPlatformCapabilities() PlatformCapabilities {
	platformOnce.Do(func() {
		platform = PlatformCapabilities{
			Popcount: Software,
			BitScan:  Software,
		}
		if cpu.X86.HasPOPCNT {
			platform.Popcount = Hardware
		} else if cpu.X86.HasSSE2 {
			platform.Popcount = BitParallel
		}
		if cpu.X86.HasBMI1 {
			platform.BitScan = Hardware
		} else if cpu.X86.HasSSE2 {
			platform.BitScan = BitParallel
		}
	})
	return platform
}
