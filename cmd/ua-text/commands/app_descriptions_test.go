//go:build !ua_nostatusdescriptions

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uastack/ua-go/pkg/statuscode"
)

func TestAppLookupStatus(t *testing.T) {
	rec := &recordingLogger{}
	app := NewApp(rec, nil)

	rep := app.LookupStatus(statuscode.BadNoCommunication)
	assert.Equal(t, StatusReport{
		Code:     "0x80310000",
		Name:     "BadNoCommunication",
		Severity: "Bad",
		Known:    true,
	}, rep)

	rep = app.LookupStatus(0x80123456)
	assert.Equal(t, statuscode.UnknownName, rep.Name)
	assert.False(t, rep.Known)
	assert.False(t, rep.Unavailable)

	require.Len(t, rec.events, 2)
	assert.True(t, rec.events[0].Status.Found)
	assert.True(t, rec.events[1].IsFailure())
}

func TestAppLookupStatusName(t *testing.T) {
	app := NewApp(nil, nil)

	rep, err := app.LookupStatusName("GoodNoData")
	require.NoError(t, err)
	assert.Equal(t, "0x00A50000", rep.Code)
	assert.Equal(t, "Good", rep.Severity)

	_, err = app.LookupStatusName("NoSuchStatus")
	assert.Error(t, err)
}
