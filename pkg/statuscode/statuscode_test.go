package statuscode

import "testing"

func TestSeverity(t *testing.T) {
	tests := []struct {
		code StatusCode
		want Severity
	}{
		{Good, SeverityGood},
		{GoodNoData, SeverityGood},
		{UncertainInitialValue, SeverityUncertain},
		{BadNoCommunication, SeverityBad},
		{StatusCode(0xC0000000), SeverityBad},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.code.Severity(); got != tt.want {
				t.Errorf("Severity(0x%08X) = %v, want %v", uint32(tt.code), got, tt.want)
			}
		})
	}

	if !Good.IsGood() || Good.IsBad() || Good.IsUncertain() {
		t.Error("Good band helpers disagree")
	}
	if !BadTcpEndpointUrlInvalid.IsBad() {
		t.Error("BadTcpEndpointUrlInvalid.IsBad() = false")
	}
	if !UncertainSubNormal.IsUncertain() {
		t.Error("UncertainSubNormal.IsUncertain() = false")
	}
}

func TestRegistryConsistency(t *testing.T) {
	for _, e := range registryEntries() {
		var want Severity
		switch {
		case len(e.Name) >= 4 && e.Name[:4] == "Good":
			want = SeverityGood
		case len(e.Name) >= 9 && e.Name[:9] == "Uncertain":
			want = SeverityUncertain
		default:
			want = SeverityBad
		}
		if got := e.Code.Severity(); got != want {
			t.Errorf("%s: severity %v does not match name prefix", e.Name, got)
		}
	}
}
