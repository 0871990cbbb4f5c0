package tesla

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "epoch seconds",
			input: `1693526400`,
			want:  time.Unix(1693526400, 0).UTC(),
		},
		{
			name:  "epoch seconds with fraction",
			input: `1693526400.75`,
			want:  time.Unix(1693526400, 0).UTC(),
		},
		{
			name:  "ISO-8601 string",
			input: `"2023-09-01T00:00:00Z"`,
			want:  time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ISO-8601 with offset",
			input: `"2023-09-01T02:00:00+02:00"`,
			want:  time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unparseable string",
			input:   `"yesterday"`,
			wantErr: true,
		},
		{
			name:    "wrong shape",
			input:   `{"seconds": 1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp

			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "want %v, got %v", tt.want, ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := NewTimestamp(time.Unix(1693526400, 0))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1693526400", string(data))
}

func TestTimestamp_RoundTrip(t *testing.T) {
	original := NewTimestamp(time.Unix(1693526400, 0).UTC())

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded.Time))
}

func TestEnvelopes(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		var envelope Response[Vehicle]

		require.NoError(t, json.Unmarshal([]byte(`{"response": {"id": 12345, "display_name": "Roadrunner"}}`), &envelope))
		assert.Equal(t, int64(12345), envelope.Response.ID)
	})

	t.Run("array", func(t *testing.T) {
		var envelope ArrayResponse[Vehicle]

		require.NoError(t, json.Unmarshal([]byte(`{"response": [{"id": 1}, {"id": 2}], "count": 2}`), &envelope))
		require.Len(t, envelope.Response, 2)
		assert.Equal(t, int64(2), envelope.Response[1].ID)
	})

	t.Run("bool", func(t *testing.T) {
		var envelope BoolResponse

		require.NoError(t, json.Unmarshal([]byte(`{"response": true}`), &envelope))
		assert.True(t, envelope.Response)
	})
}
