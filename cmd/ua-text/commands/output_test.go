package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleURLReport() URLReport {
	host, path := "host", "p"
	return URLReport{
		URL:      "opc.tcp://host:4840/p",
		Status:   "Good",
		Hostname: &host,
		Port:     4840,
		Path:     &path,
		Addr:     "host:4840",
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleURLReport()))

	var got URLReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(sampleURLReport(), got); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSONNullSpans(t *testing.T) {
	var buf bytes.Buffer
	rep := URLReport{URL: "opc.tcp://", Status: "Good"}
	require.NoError(t, Render(&buf, FormatJSON, rep))

	assert.Contains(t, buf.String(), `"hostname": null`)
	assert.Contains(t, buf.String(), `"path": null`)
	assert.NotContains(t, buf.String(), `"port"`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, []StatusReport{
		{Code: "0x00000000", Name: "Good", Severity: "Good", Known: true},
	}))

	var got []StatusReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Good", got[0].Name)
	assert.True(t, got[0].Known)
}

func TestRenderCBOR(t *testing.T) {
	var buf bytes.Buffer
	want := NumberReport{Input: "12x", Consumed: 2, Value: 12}
	require.NoError(t, Render(&buf, FormatCBOR, want))

	var got NumberReport
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, []StatusReport{
		{Code: "0x80310000", Name: "BadNoCommunication", Severity: "Bad", Known: true},
		{Code: "0x80123456", Name: "Unknown StatusCode", Severity: "Bad"},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0x80310000"))
	assert.True(t, strings.HasSuffix(lines[1], "Unknown StatusCode"))
}

func TestURLReportText(t *testing.T) {
	text := URLReport{URL: "opc.tcp://", Status: "Good"}.Text()
	assert.Contains(t, text, "hostname: (null)")
	assert.Contains(t, text, "port:     (none)")

	text = sampleURLReport().Text()
	assert.Contains(t, text, `hostname: "host"`)
	assert.Contains(t, text, "addr:     host:4840")
}

func TestNumberReportText(t *testing.T) {
	assert.Equal(t, `"x": no digits`, NumberReport{Input: "x"}.Text())
	assert.Equal(t, `"42": consumed 2, value 42`, NumberReport{Input: "42", Consumed: 2, Value: 42}.Text())
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, "xml", sampleURLReport()))
	assert.Error(t, Render(&buf, FormatText, 42))
}
