package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	testCases := []struct {
		description string
		level       string
		expectDebug bool
		expectInfo  bool
		expectErr   bool
	}{
		{description: "default is info", level: "", expectInfo: true},
		{description: "debug", level: "debug", expectDebug: true, expectInfo: true},
		{description: "warn hides info", level: "warn"},
		{description: "invalid level", level: "verbose", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			logger, err := NewWithWriter(tc.level, buffer)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			logger.Debugw("debug message")
			logger.Infow("info message", "key", "value")
			_ = logger.Sync()
			assert.Equal(t, tc.expectDebug, bytes.Contains(buffer.Bytes(), []byte("debug message")))
			assert.Equal(t, tc.expectInfo, bytes.Contains(buffer.Bytes(), []byte("info message")))
		})
	}
}
