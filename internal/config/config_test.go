package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFromMap(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    Config
		wantErr bool
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want:    Config{LogLevel: "info", LogEncoding: "console"},
		},
		{
			name: "overrides",
			environ: map[string]string{
				"CVT_FILELIST_LOG_LEVEL":    "debug",
				"CVT_FILELIST_LOG_ENCODING": "json",
			},
			want: Config{LogLevel: "debug", LogEncoding: "json"},
		},
		{
			name:    "bad level",
			environ: map[string]string{"CVT_FILELIST_LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "bad encoding",
			environ: map[string]string{"CVT_FILELIST_LOG_ENCODING": "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMap(tt.environ)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("CVT_FILELIST_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, zapcore.WarnLevel, cfg.Level())
}

func TestLevelFallback(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, Config{LogLevel: "nonsense"}.Level())
	assert.Equal(t, zapcore.DebugLevel, Config{LogLevel: "DEBUG"}.Level())
}
