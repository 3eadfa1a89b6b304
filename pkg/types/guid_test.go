package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidMatchesUUIDText(t *testing.T) {
	u := uuid.MustParse("a123456c-0abc-1a2b-815f-687212aaee1b")
	g := GuidFromUUID(u)

	assert.Equal(t, uint32(0xA123456C), g.Data1)
	assert.Equal(t, uint16(0x0ABC), g.Data2)
	assert.Equal(t, uint16(0x1A2B), g.Data3)
	assert.Equal(t, [8]byte{0x81, 0x5F, 0x68, 0x72, 0x12, 0xAA, 0xEE, 0x1B}, g.Data4)
	assert.Equal(t, u.String(), g.String())
	assert.Equal(t, u, g.UUID())
}

func TestParseGuid(t *testing.T) {
	g, err := ParseGuid("FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF")
	require.NoError(t, err)
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", g.String())

	_, err = ParseGuid("not-a-guid")
	assert.Error(t, err)
}

func TestGuidIsNull(t *testing.T) {
	assert.True(t, NullGuid.IsNull())
	assert.False(t, Guid{Data4: [8]byte{7: 1}}.IsNull())
}

func TestGuidTextRoundTrip(t *testing.T) {
	in := Guid{Data1: 0x01020304, Data2: 0x0506, Data3: 0x0708, Data4: [8]byte{9, 10, 11, 12, 13, 14, 15, 16}}

	text, err := in.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10", string(text))

	var out Guid
	require.NoError(t, out.UnmarshalText(text))
	assert.Equal(t, in, out)
}
