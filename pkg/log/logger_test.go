package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("debug")
	assert.True(t, L.Core().Enabled(zapcore.DebugLevel))

	SetLevel("error")
	assert.False(t, L.Core().Enabled(zapcore.WarnLevel))

	// 非法级别不改变当前设置
	SetLevel("verbose")
	assert.True(t, L.Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, L.Core().Enabled(zapcore.WarnLevel))
}
