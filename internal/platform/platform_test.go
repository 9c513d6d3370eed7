package platform_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pwdgen/pwdgen/internal/platform"
)

func TestParse(t *testing.T) {
	tests := []struct {
		id   string
		want platform.Platform
	}{
		{"darwin", platform.Darwin},
		{"windows", platform.Windows},
		{"linux", platform.Linux},
		{" Linux ", platform.Linux},
		{"freebsd", platform.Unknown},
		{"", platform.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Parse(tt.id))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "darwin", platform.Darwin.String())
	assert.Equal(t, "windows", platform.Windows.String())
	assert.Equal(t, "linux", platform.Linux.String())
	assert.Equal(t, "unknown", platform.Unknown.String())
	assert.Equal(t, "unknown", platform.Platform(42).String())
}

func TestDetect(t *testing.T) {
	assert.Equal(t, platform.Parse(runtime.GOOS), platform.Detect(context.Background()))
}
