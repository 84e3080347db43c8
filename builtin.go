package transmute

// BoolToUint8 views a bool as its single-byte encoding: false is 0 and true
// is 1.
var BoolToUint8 = MustRegister(Func(Unsafe, boolToUint8))

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
