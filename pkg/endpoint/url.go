package endpoint

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/uastack/ua-go/pkg/statuscode"
	"github.com/uastack/ua-go/pkg/types"
)

// Scheme is the mandatory, case-sensitive URL prefix.
const Scheme = "opc.tcp://"

// MaxPortDigits is the longest accepted port.
const MaxPortDigits = 5

// DefaultPort is the registered OPC UA TCP port, used by Addr when the URL
// carries no port.
const DefaultPort = 4840

// ErrInvalidEndpointURL is returned by Result.Err for any malformed URL.
var ErrInvalidEndpointURL = errors.New("invalid endpoint url")

// Result is the outcome of ParseURL.
//
// Status is statuscode.Good or statuscode.BadTcpEndpointUrlInvalid. The
// fields hold whatever structure was recognized, also on failure. A zero
// Port means no port was given.
type Result struct {
	Status   statuscode.StatusCode
	Hostname types.ByteString
	Port     uint16
	Path     types.ByteString

	reason string
}

// OK returns true if the URL was well formed.
func (r Result) OK() bool {
	return r.Status == statuscode.Good
}

// Err returns nil for a well formed URL, otherwise an error wrapping
// ErrInvalidEndpointURL with the failure reason.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	if r.reason == "" {
		return ErrInvalidEndpointURL
	}
	return fmt.Errorf("%w: %s", ErrInvalidEndpointURL, r.reason)
}

// Addr returns "hostname:port" for dialing. DefaultPort is used when the
// URL has no port. Bracketed IPv6 literals are kept as they are.
func (r Result) Addr() string {
	port := r.Port
	if port == 0 {
		port = DefaultPort
	}
	return string(r.Hostname) + ":" + strconv.FormatUint(uint64(port), 10)
}

// ParseURLString is ParseURL for a Go string. The returned spans alias a
// copy of s.
func ParseURLString(s string) Result {
	return ParseURL(types.ByteString(s))
}

// ParseURL splits an endpoint URL into hostname, port and path.
// The returned spans are views into url. Zero-length fields are null.
// A port must be 1 to 5 digits and at most 65535; larger values are
// rejected rather than truncated to 16 bits.
func ParseURL(url types.ByteString) Result {
	var r Result

	if len(url) < len(Scheme) {
		return r.fail("shorter than scheme")
	}
	if !bytes.HasPrefix(url, []byte(Scheme)) {
		return r.fail("scheme is not " + Scheme)
	}

	curr := len(Scheme)
	start := curr

	// Hostname
	if curr < len(url) && url[curr] == '[' {
		end := bytes.IndexByte(url[curr:], ']')
		if end < 0 {
			return r.fail("unterminated address literal")
		}
		curr += end + 1
	} else {
		for curr < len(url) && url[curr] != ':' && url[curr] != '/' {
			curr++
		}
	}
	if curr > start {
		r.Hostname = url[start:curr]
	}
	if curr == len(url) {
		return r.good()
	}

	// Port
	if url[curr] == ':' {
		curr++
		progress, port := ReadNumber(url[curr:])
		if progress == 0 {
			return r.fail("empty port")
		}
		if progress > MaxPortDigits {
			return r.fail("port longer than " + strconv.Itoa(MaxPortDigits) + " digits")
		}
		if port > 0xFFFF {
			return r.fail("port out of range")
		}
		curr += progress
		if curr < len(url) && url[curr] != '/' {
			return r.fail(fmt.Sprintf("unexpected %q after port", url[curr]))
		}
		r.Port = uint16(port)
		if curr == len(url) {
			return r.good()
		}
	}

	// Path
	if url[curr] != '/' {
		return r.fail(fmt.Sprintf("unexpected %q after hostname", url[curr]))
	}
	curr++
	end := len(url)
	if end > curr && url[end-1] == '/' {
		end--
	}
	if end > curr {
		r.Path = url[curr:end]
	}
	return r.good()
}

func (r Result) good() Result {
	r.Status = statuscode.Good
	r.reason = ""
	return r
}

func (r Result) fail(reason string) Result {
	r.Status = statuscode.BadTcpEndpointUrlInvalid
	r.reason = reason
	return r
}
