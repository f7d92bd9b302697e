package domain

// Platform is the runtime environment variant of the kernel.
type Platform string

const (
	// PlatformKVM runs the kernel as a hardware-virtualized guest.
	PlatformKVM Platform = "kvm"
	// PlatformLinuxu runs the kernel as a Linux userspace process.
	PlatformLinuxu Platform = "linuxu"
)

// Platforms returns all supported platforms.
func Platforms() []Platform {
	return []Platform{PlatformKVM, PlatformLinuxu}
}

// String returns the identifier passed to kraft via --plat.
func (p Platform) String() string {
	return string(p)
}

// EntrySymbol returns the platform's boot entry point inside libunikraft.a.
// The host application jumps to it from its own start routine.
func (p Platform) EntrySymbol() string {
	switch p {
	case PlatformKVM:
		return "_libkvmplat_entry"
	case PlatformLinuxu:
		return "_liblinuxuplat_start"
	default:
		return ""
	}
}

// PlatformChoice is the outcome of platform resolution: either a platform or a skip.
// A skip is a valid configuration in which nothing is built.
type PlatformChoice struct {
	platform Platform
	skip     bool
}

// Skip reports whether no platform was selected.
func (c PlatformChoice) Skip() bool {
	return c.skip
}

// Platform returns the selected platform. It is empty when Skip is true.
func (c PlatformChoice) Platform() Platform {
	return c.platform
}

// Require returns the selected platform, or ErrNoPlatform for a skip.
func (c PlatformChoice) Require() (Platform, error) {
	if c.skip {
		return "", ErrNoPlatform
	}
	return c.platform, nil
}

// ResolvePlatform maps the two mutually exclusive platform flags to a choice.
func ResolvePlatform(kvm, linuxu bool) (PlatformChoice, error) {
	switch {
	case kvm && linuxu:
		return PlatformChoice{}, ErrTooManyPlatforms
	case kvm:
		return PlatformChoice{platform: PlatformKVM}, nil
	case linuxu:
		return PlatformChoice{platform: PlatformLinuxu}, nil
	default:
		return PlatformChoice{skip: true}, nil
	}
}
