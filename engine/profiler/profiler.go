package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, camera pose updates and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	poseUpdates    int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logger         *log.Logger
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		logger:         log.Default(),
	}
}

// Tick should be called once per engine tick.
// Logs statistics when the update interval has elapsed: ticks per second, the share of ticks that
// moved a camera, heap usage, allocation rate and GC pauses.
//
// Parameters:
//   - poseChanged: whether any camera pose changed during this tick
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(poseChanged bool) bool {
	p.tickCount++
	if poseChanged {
		p.poseUpdates++
	}
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	active := 100 * float64(p.poseUpdates) / float64(p.tickCount)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// allocation rate since the previous report (MB/sec)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Printf("[Profiler] TPS: %.2f | Moving: %.0f%% | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		tps, active, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.tickCount = 0
	p.poseUpdates = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
