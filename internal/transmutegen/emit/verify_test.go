package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/emit"
)

func TestParseVerify(t *testing.T) {
	for s, want := range map[string]emit.Verify{
		"":       emit.VerifyAuto,
		"auto":   emit.VerifyAuto,
		"always": emit.VerifyAlways,
		"never":  emit.VerifyNever,
	} {
		v, err := emit.ParseVerify(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, v, s)
	}
}

func TestParseVerifyInvalid(t *testing.T) {
	_, err := emit.ParseVerify("sometimes")
	assert.EqualError(t, err, `invalid verify mode "sometimes"; want auto, always or never`)
}

func TestVerifyString(t *testing.T) {
	assert.Equal(t, "auto", emit.VerifyAuto.String())
	assert.Equal(t, "always", emit.VerifyAlways.String())
	assert.Equal(t, "never", emit.VerifyNever.String())
	assert.Equal(t, "Verify(7)", emit.Verify(7).String())
}
