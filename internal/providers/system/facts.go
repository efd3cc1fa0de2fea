package system

import (
	"fmt"
	"os"
	"os/user"
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// CPU describes one logical processor
type CPU struct {
	Model string
	// Hz is the nominal clock rate; zero when the platform does not report it
	Hz int64
}

// GHz returns the clock rate in gigahertz
func (c CPU) GHz() float64 {
	return float64(c.Hz) / 1e9
}

// Facts answers the read-only host queries of the os verb
type Facts interface {
	EOL() string
	CPUs() ([]CPU, error)
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}

// HostFacts reads facts from the running machine
type HostFacts struct{}

// NewHostFacts creates a host facts source
func NewHostFacts() HostFacts {
	return HostFacts{}
}

// EOL returns the platform line ending
func (HostFacts) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs returns one entry per logical CPU
func (HostFacts) CPUs() ([]CPU, error) {
	n := runtime.NumCPU()
	if n < 1 {
		return nil, fmt.Errorf("no CPUs reported")
	}

	model := cpuid.CPU.BrandName
	if model == "" {
		model = cpuid.CPU.VendorString
	}
	if model == "" {
		model = "unknown"
	}
	hz := cpuid.CPU.Hz
	if hz <= 0 {
		hz = cpuid.CPU.BoostFreq
	}

	cpus := make([]CPU, n)
	for i := range cpus {
		cpus[i] = CPU{Model: model, Hz: hz}
	}
	return cpus, nil
}

// HomeDir returns the current user's home directory
func (HostFacts) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// Username returns the login name of the process owner
func (HostFacts) Username() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("cannot determine current user")
}

// Architecture returns the CPU architecture the binary runs on
func (HostFacts) Architecture() string {
	return runtime.GOARCH
}
