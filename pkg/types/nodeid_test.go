package types

import (
	"encoding/json"
	"testing"
)

func TestNodeIDStringNumeric(t *testing.T) {
	tests := []struct {
		name string
		ns   uint16
		id   uint32
		want string
	}{
		{"zero", 0, 0, "ns=0;i=0"},
		{"typical", 12345, 1234567890, "ns=12345;i=1234567890"},
		{"max values", 0xFFFF, 0xFFFFFFFF, "ns=65535;i=4294967295"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNumericNodeID(tt.ns, tt.id).String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeIDStringString(t *testing.T) {
	tests := []struct {
		name string
		ns   uint16
		id   ByteString
		want string
	}{
		{"empty", 0, NewString(""), "ns=0;i="},
		{"null", 7, NullString, "ns=7;i="},
		{"with spaces", 54321, NewString("Some String"), "ns=54321;i=Some String"},
		{"separators are not escaped", 1, NewString("a;ns=2;i=3"), "ns=1;i=a;ns=2;i=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStringNodeID(tt.ns, tt.id).String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeIDStringGuid(t *testing.T) {
	tests := []struct {
		name string
		ns   uint16
		guid Guid
		want string
	}{
		{
			name: "null guid",
			ns:   0,
			guid: NullGuid,
			want: "ns=0;i=00000000-0000-0000-0000-000000000000",
		},
		{
			name: "mixed digits",
			ns:   65535,
			guid: Guid{
				Data1: 0xA123456C,
				Data2: 0x0ABC,
				Data3: 0x1A2B,
				Data4: [8]byte{0x81, 0x5F, 0x68, 0x72, 0x12, 0xAA, 0xEE, 0x1B},
			},
			want: "ns=65535;i=a123456c-0abc-1a2b-815f-687212aaee1b",
		},
		{
			name: "all ones",
			ns:   65535,
			guid: Guid{
				Data1: 0xFFFFFFFF,
				Data2: 0xFFFF,
				Data3: 0xFFFF,
				Data4: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			},
			want: "ns=65535;i=ffffffff-ffff-ffff-ffff-ffffffffffff",
		},
		{
			name: "leading zeros are padded",
			ns:   2,
			guid: Guid{Data1: 0x1, Data2: 0x2, Data3: 0x3, Data4: [8]byte{0, 4, 0, 0, 0, 0, 0, 5}},
			want: "ns=2;i=00000001-0002-0003-0004-000000000005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGuidNodeID(tt.ns, tt.guid).String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeIDStringByteString(t *testing.T) {
	tests := []struct {
		name string
		ns   uint16
		id   ByteString
		want string
	}{
		{"null", 0, nil, "ns=0;i="},
		{"single byte", 123, ByteString{0x2C}, "ns=123;i=2c"},
		{"five bytes", 599, ByteString{0x21, 0x83, 0xE0, 0x54, 0x78}, "ns=599;i=2183e05478"},
		{"leading zero nibble", 1, ByteString{0x00, 0x0A}, "ns=1;i=000a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewByteStringNodeID(tt.ns, tt.id).String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeIDZeroValue(t *testing.T) {
	var n NodeID
	if n.Type() != IdentifierNumeric {
		t.Errorf("Type() = %v, want numeric", n.Type())
	}
	if got := n.String(); got != "ns=0;i=0" {
		t.Errorf("String() = %q, want %q", got, "ns=0;i=0")
	}
}

func TestNodeIDAccessorsMatchTag(t *testing.T) {
	n := NewStringNodeID(3, NewString("motor"))

	if _, ok := n.Numeric(); ok {
		t.Error("Numeric() reported ok for a string NodeID")
	}
	if _, ok := n.GuidID(); ok {
		t.Error("GuidID() reported ok for a string NodeID")
	}
	if _, ok := n.ByteStringID(); ok {
		t.Error("ByteStringID() reported ok for a string NodeID")
	}
	s, ok := n.StringID()
	if !ok || s.String() != "motor" {
		t.Errorf("StringID() = %q, %v; want %q, true", s, ok, "motor")
	}
}

func TestNodeIDEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b NodeID
		want bool
	}{
		{"same numeric", NewNumericNodeID(1, 2), NewNumericNodeID(1, 2), true},
		{"different namespace", NewNumericNodeID(1, 2), NewNumericNodeID(2, 2), false},
		{"string vs bytestring", NewStringNodeID(1, ByteString("a")), NewByteStringNodeID(1, ByteString("a")), false},
		{"null equals empty string", NewStringNodeID(1, nil), NewStringNodeID(1, ByteString{}), true},
		{"same guid", NewGuidNodeID(0, Guid{Data1: 9}), NewGuidNodeID(0, Guid{Data1: 9}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeIDMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]NodeID{"node": NewByteStringNodeID(123, ByteString{0x2C})})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if got, want := string(data), `{"node":"ns=123;i=2c"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}
