package types

import "fmt"

// Platform identifies one named sequence in the catalog: an instrument
// family, or a report context for one.
type Platform uint8

// Known platforms, in catalog order.
const (
	PlatformPacBio Platform = iota + 1
	PlatformIlluminaMiSeqProject
	PlatformIlluminaMiSeqReport
	PlatformIlluminaHiSeqProject
)

var platformNames = [...]string{
	PlatformPacBio:               "pacBio",
	PlatformIlluminaMiSeqProject: "illuminaMiSeqProject",
	PlatformIlluminaMiSeqReport:  "illuminaMiSeqReport",
	PlatformIlluminaHiSeqProject: "illuminaHiSeqProject",
}

// Platforms returns every known platform in catalog order.
func Platforms() []Platform {
	return []Platform{
		PlatformPacBio,
		PlatformIlluminaMiSeqProject,
		PlatformIlluminaMiSeqReport,
		PlatformIlluminaHiSeqProject,
	}
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	return p > 0 && int(p) < len(platformNames)
}

func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Platform(%d)", uint8(p))
	}
	return platformNames[p]
}

// ParsePlatform resolves a platform name such as "illuminaMiSeqReport".
// Returns ErrUnknownPlatform if the name is not recognized.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms() {
		if platformNames[p] == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlatform, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
