package emit

import "fmt"

// Verify selects how generated widening conversions check the discriminant
// equality between an alias and its parent.
type Verify int

const (
	// VerifyAuto emits the check guarded by transmute.Verifying, so it only
	// runs in builds with the transmuteverify tag.
	VerifyAuto Verify = iota

	// VerifyAlways emits the check unconditionally.
	VerifyAlways

	// VerifyNever omits the check.
	VerifyNever
)

// ParseVerify parses the value of the -verify flag.
func ParseVerify(s string) (Verify, error) {
	switch s {
	case "", "auto":
		return VerifyAuto, nil
	case "always":
		return VerifyAlways, nil
	case "never":
		return VerifyNever, nil
	}
	return 0, fmt.Errorf("invalid verify mode %q; want auto, always or never", s)
}

func (v Verify) String() string {
	switch v {
	case VerifyAuto:
		return "auto"
	case VerifyAlways:
		return "always"
	case VerifyNever:
		return "never"
	}
	return fmt.Sprintf("Verify(%d)", int(v))
}
