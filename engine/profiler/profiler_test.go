package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfiler_Tick(t *testing.T) {
	var out bytes.Buffer
	p := NewProfiler()
	p.logger = log.New(&out, "", 0)

	assert.False(t, p.Tick(true), "nothing is reported before the interval elapses")
	assert.Equal(t, 1, p.tickCount)
	assert.Equal(t, 1, p.poseUpdates)

	p.lastTime = time.Now().Add(-2 * time.Second)
	assert.True(t, p.Tick(false))
	assert.Contains(t, out.String(), "[Profiler] TPS:")
	assert.Contains(t, out.String(), "Moving: 50%")

	assert.Equal(t, 0, p.tickCount)
	assert.Equal(t, 0, p.poseUpdates)
}
