package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/lexiquest/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
		wantErr   bool
	}{
		{"development", config.Config{Env: "local"}, true, false},
		{"production", config.Config{Env: "production"}, false, false},
		{"override", config.Config{Env: "production", LogLevel: "debug"}, true, false},
		{"bad level", config.Config{Env: "local", LogLevel: "loud"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
