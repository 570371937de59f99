package core

import "sync"

const AVG_COUNT uint8 = 30

type MetricsState struct {
	DrawAVGCounter    uint8
	MStimes           [AVG_COUNT]float64
	MSavg             float64
	Draws             int32
	AccumulatedDrawMS float64
	VerticesPerSecond float64
	TotalVertices     uint64

	mutex sync.Mutex
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			MStimes: [AVG_COUNT]float64{0},
		}
	})
	return nil
}

/**
 * @brief Records one completed draw. Should be called once per draw with the
 * elapsed wall time in seconds and the number of vertex invocations executed.
 */
func MetricsRecordDraw(draw_elapsed_time float64, vertex_count uint64) {
	if metricsState == nil {
		return
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()

	// Calculate draw ms average
	draw_ms := (draw_elapsed_time * 1000.0)
	metricsState.MStimes[metricsState.DrawAVGCounter] = draw_ms
	if metricsState.DrawAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += metricsState.MStimes[i]
		}
		metricsState.MSavg = sum / float64(AVG_COUNT)
	}
	metricsState.DrawAVGCounter++
	metricsState.DrawAVGCounter %= AVG_COUNT

	metricsState.TotalVertices += vertex_count
	if draw_elapsed_time > 0 {
		metricsState.VerticesPerSecond = float64(vertex_count) / draw_elapsed_time
	}

	metricsState.AccumulatedDrawMS += draw_ms
	metricsState.Draws++
}

/** @brief Returns the ring-averaged draw time in milliseconds. */
func MetricsDrawTimeAvg() float64 {
	if metricsState == nil {
		return 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.MSavg
}

/** @brief Returns the vertex throughput of the most recent draw. */
func MetricsVertexThroughput() float64 {
	if metricsState == nil {
		return 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.VerticesPerSecond
}

/** @brief Returns the number of draws recorded since initialization. */
func MetricsDrawCount() int32 {
	if metricsState == nil {
		return 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.Draws
}
