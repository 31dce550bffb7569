package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeColumn_Scan(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 800, time.UTC)

	tests := []struct {
		name string
		src  any
		want time.Time
	}{
		{name: "time", src: want, want: want},
		{name: "sqlite text", src: "2026-03-04 05:06:07.0000008+00:00", want: want},
		{name: "sqlite bytes", src: []byte("2026-03-04 05:06:07"), want: want.Truncate(time.Second)},
		{name: "iso with Z", src: "2026-03-04T05:06:07Z", want: want.Truncate(time.Second)},
		{name: "null", src: nil, want: time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, scanTime(&got).Scan(tt.src))
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestTimeColumn_ScanErrors(t *testing.T) {
	var got time.Time
	assert.Error(t, scanTime(&got).Scan("yesterday"))
	assert.Error(t, scanTime(&got).Scan(42))
}
