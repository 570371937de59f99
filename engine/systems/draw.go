package systems

import (
	"runtime"
	"sync"
	"time"

	"github.com/spaghettifunk/terravox/engine/core"
	"github.com/spaghettifunk/terravox/engine/shader"
)

/**
 * @brief DrawInstanced executes the vertex stage for every
 * (vertex, instance) pair of a draw, the way a rasterizer front end
 * would: invocations are independent, share the read-only uniforms and
 * never communicate. Vertex ranges are sharded across workers; each
 * invocation writes only its own output slot, so the result is identical
 * to the serial loop regardless of scheduling.
 *
 * The result is indexed [instance][vertex].
 */
func DrawInstanced(vertices []shader.Vertex, instances []shader.InstanceTransform, uniforms *shader.FrameUniforms, workers int) [][]shader.VertexOutput {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()

	outputs := make([][]shader.VertexOutput, len(instances))
	for i := range outputs {
		outputs[i] = make([]shader.VertexOutput, len(vertices))
	}

	total := len(instances) * len(vertices)
	if total == 0 {
		return outputs
	}
	if workers > total {
		workers = total
	}

	// Flattened invocation range [0, total), split into one contiguous
	// span per worker.
	span := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		begin := w * span
		end := begin + span
		if end > total {
			end = total
		}
		if begin >= end {
			break
		}
		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			for i := begin; i < end; i++ {
				instance := i / len(vertices)
				vertex := i % len(vertices)
				outputs[instance][vertex] = shader.TransformVertex(vertices[vertex], instances[instance], uniforms)
			}
		}(begin, end)
	}
	wg.Wait()

	core.MetricsRecordDraw(time.Since(start).Seconds(), uint64(total))
	return outputs
}
