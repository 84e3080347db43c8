package transmute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transmute "github.com/coolCucumber-cat/transmute-guard"
	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"
)

type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Primary is written the way transmutegen writes
// transmute.EnumAlias[Color, uint8](Red, Blue).
type Primary uint8

const (
	PrimaryRed  Primary = Primary(Red)
	PrimaryBlue Primary = Primary(Blue)
)

func (v Primary) Underlying() uint8 { return uint8(v) }

func (v Primary) AsParent() Color { return Color(v) }

func PrimaryFromParent(p Color) (Primary, bool) {
	switch p {
	case Red:
		return PrimaryRed, true
	case Blue:
		return PrimaryBlue, true
	}
	return 0, false
}

func (v *Primary) FromParent(p Color) error {
	a, ok := PrimaryFromParent(p)
	if !ok {
		return transmuteerrors.Narrow("Primary", "Color", p)
	}
	*v = a
	return nil
}

// skewed is an alias whose generated code went wrong: its discriminants do
// not match the parent members they claim to stand for.
type skewed uint8

const (
	skewedRed  skewed = 1
	skewedBlue skewed = 2
)

func (v skewed) widenByMatch() (Color, bool) {
	switch v {
	case skewedRed:
		return Red, true
	case skewedBlue:
		return Blue, true
	}
	return 0, false
}

func (v skewed) AsParent() Color {
	fast := Color(v)
	slow, ok := v.widenByMatch()
	transmute.AssertWiden("skewed.AsParent", v, fast, slow, ok)
	return fast
}

func TestAliasPrimary(t *testing.T) {
	assert.Equal(t, Red, PrimaryRed.AsParent())
	assert.Equal(t, Blue, PrimaryBlue.AsParent())
	assert.Equal(t, uint8(2), PrimaryBlue.Underlying())

	_, ok := PrimaryFromParent(Green)
	assert.False(t, ok)

	p, ok := PrimaryFromParent(Blue)
	require.True(t, ok)
	assert.Equal(t, PrimaryBlue, p)
}

func TestAliasRoundTrip(t *testing.T) {
	for _, a := range []Primary{PrimaryRed, PrimaryBlue} {
		p, ok := PrimaryFromParent(a.AsParent())
		require.True(t, ok)
		assert.Equal(t, a, p)
	}
}

func TestWidenNarrow(t *testing.T) {
	assert.Equal(t, Blue, transmute.Widen[Color](PrimaryBlue))

	p, err := transmute.Narrow[Primary](Red)
	require.NoError(t, err)
	assert.Equal(t, PrimaryRed, p)

	p, err = transmute.Narrow[Primary](Green)
	assert.ErrorIs(t, err, transmuteerrors.ErrNotRepresentable)
	assert.EqualError(t, err, "narrowing Color 1 to Primary: not representable")
	assert.Zero(t, p)
}

func TestAssertWidenAgreement(t *testing.T) {
	assert.NotPanics(t, func() {
		transmute.AssertWiden("Primary.AsParent", PrimaryBlue, Blue, Blue, true)
	})
}

func TestAssertWidenMismatch(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*transmuteerrors.ViolationError)
		require.True(t, ok, "panic value %T", r)
		assert.True(t, v.Member)
		assert.Equal(t, Green, v.Fast)
		assert.Equal(t, Red, v.Slow)
		assert.Equal(t, "transmute: skewed.AsParent: discriminant mismatch for 1: reinterpreted 1, matched 0", v.Error())
	}()
	skewedRed.AsParent()
}

func TestAssertWidenNonMember(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*transmuteerrors.ViolationError)
		require.True(t, ok, "panic value %T", r)
		assert.False(t, v.Member)
	}()
	skewed(7).AsParent()
}

func TestEnumAliasNotGenerated(t *testing.T) {
	assert.PanicsWithValue(t, "transmute: not generated", func() {
		transmute.EnumAlias[Color, uint8](Red)
	})
}
