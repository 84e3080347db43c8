//go:build transmuteverify

package transmute

// Verifying reports whether the module was built with the transmuteverify tag.
// Generated enum aliases cross-check every widening conversion while it is
// true.
const Verifying = true
