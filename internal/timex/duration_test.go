package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", in: `"24h"`, want: 24 * time.Hour},
		{name: "string with minutes", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "integer nanoseconds", in: `1000000000`, want: time.Second},
		{name: "invalid string", in: `"not-a-duration"`, wantErr: true},
		{name: "invalid type", in: `{"x":1}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 15 * time.Minute}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"15m0s"`, string(b))
}
