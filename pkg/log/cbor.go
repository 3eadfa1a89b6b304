package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Trace files are CBOR sequences: encoded Event maps written back to back
// with no framing.
var (
	traceEnc = mustEncMode(cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	})

	// Decoding tolerates unknown keys so that older readers accept files
	// written by newer tools.
	traceDec = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic("log: trace encoder options: " + err.Error())
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic("log: trace decoder options: " + err.Error())
	}
	return dm
}

// EncodeEvent returns the trace encoding of event.
func EncodeEvent(event Event) ([]byte, error) {
	return traceEnc.Marshal(event)
}

// DecodeEvent parses a single encoded event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	err := traceDec.Unmarshal(data, &event)
	return event, err
}

// NewEncoder returns an encoder that appends events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return traceEnc.NewEncoder(w)
}

// NewDecoder returns a decoder that reads consecutive events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return traceDec.NewDecoder(r)
}
