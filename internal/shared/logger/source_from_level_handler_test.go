package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFromLevelHandler(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		logLevel   slog.Level
		wantSource bool
	}{
		{
			name:       "below threshold omits source",
			minLevel:   slog.LevelWarn,
			logLevel:   slog.LevelInfo,
			wantSource: false,
		},
		{
			name:       "at threshold includes source",
			minLevel:   slog.LevelWarn,
			logLevel:   slog.LevelWarn,
			wantSource: true,
		},
		{
			name:       "above threshold includes source",
			minLevel:   slog.LevelWarn,
			logLevel:   slog.LevelError,
			wantSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			log := slog.New(NewSourceFromLevelHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.logLevel, "test message")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			_, hasSource := entry[slog.SourceKey]
			assert.Equal(t, tt.wantSource, hasSource)
		})
	}
}
