package systems

import (
	"sync"

	"github.com/spaghettifunk/terravox/engine/core"
	"github.com/spaghettifunk/terravox/engine/math"
	"github.com/spaghettifunk/terravox/engine/shader"
	"github.com/spaghettifunk/terravox/engine/world"
)

/**
 * @brief A chunk placed in the world: the generated mesh plus the world
 * position its instance transform is built from.
 */
type Chunk struct {
	ID       uint32
	Position math.Vec3
	Mesh     world.MeshData
}

/**
 * @brief Returns the per-instance transform placing this chunk's mesh in
 * the world.
 */
func (c *Chunk) InstanceTransform() shader.InstanceTransform {
	return shader.NewInstanceTransform(math.NewMat4Translation(c.Position))
}

type pendingWork struct {
	position math.Vec3
	cancel   chan struct{}
}

type finishedMesh struct {
	id   uint32
	mesh world.MeshData
}

/**
 * @brief ChunkManager generates chunk meshes asynchronously on the job
 * system. Dispatch queues a build, Update drains whatever finished since
 * the last call.
 */
type ChunkManager struct {
	jobs     *JobSystem
	terrain  *world.TerrainGenerator
	finished chan finishedMesh

	mutex    sync.Mutex
	pending  map[uint32]*pendingWork
	shutDown bool
}

func NewChunkManager(terrain *world.TerrainGenerator, workers int, queueSize int) (*ChunkManager, error) {
	jobs, err := NewJobSystem(workers, queueSize)
	if err != nil {
		return nil, err
	}
	return &ChunkManager{
		jobs:     jobs,
		terrain:  terrain,
		finished: make(chan finishedMesh, queueSize+1),
		pending:  make(map[uint32]*pendingWork),
	}, nil
}

/**
 * @brief Queues the generation of the chunk at chunkLocation, to be placed
 * at position once built. Returns the id of the pending chunk, usable with
 * Cancel.
 */
func (cm *ChunkManager) Dispatch(position math.Vec3, chunkLocation math.Vec2) (uint32, error) {
	cm.mutex.Lock()
	if cm.shutDown {
		cm.mutex.Unlock()
		return 0, core.ErrManagerShutdown
	}
	id := core.IdentifierAquireNewID(cm)
	work := &pendingWork{
		position: position,
		cancel:   make(chan struct{}),
	}
	cm.pending[id] = work
	cm.mutex.Unlock()

	cm.jobs.AddWorkNonBlocking(JobTask{
		InputParams: chunkLocation,
		OnStart: func(params interface{}, results chan interface{}) error {
			// Dropped before the worker got to it. Not an error.
			select {
			case <-work.cancel:
				return nil
			default:
			}
			location := params.(math.Vec2)
			results <- cm.terrain.BuildChunkMesh(location)
			return nil
		},
		OnComplete: func(results chan interface{}) {
			select {
			case result := <-results:
				cm.finished <- finishedMesh{id: id, mesh: result.(world.MeshData)}
			default:
				// Cancelled jobs produce no mesh.
			}
		},
	})
	core.LogDebug("chunk %d dispatched for location (%f, %f)", id, chunkLocation.X, chunkLocation.Y)
	return id, nil
}

/**
 * @brief Cancels a pending chunk build. Builds already running finish but
 * their result is discarded.
 */
func (cm *ChunkManager) Cancel(id uint32) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	work, ok := cm.pending[id]
	if !ok {
		return core.ErrChunkNotPending
	}
	close(work.cancel)
	delete(cm.pending, id)
	if err := core.IdentifierReleaseID(id); err != nil {
		return err
	}
	return nil
}

/**
 * @brief Drains the meshes finished since the last call and returns them
 * as placed chunks. Never blocks; returns nil when nothing finished.
 */
func (cm *ChunkManager) Update() []*Chunk {
	var chunks []*Chunk
	for {
		select {
		case fin := <-cm.finished:
			cm.mutex.Lock()
			work, ok := cm.pending[fin.id]
			if !ok {
				// Cancelled after completion; drop the mesh.
				cm.mutex.Unlock()
				continue
			}
			delete(cm.pending, fin.id)
			cm.mutex.Unlock()
			if err := core.IdentifierReleaseID(fin.id); err != nil {
				core.LogWarn(err.Error())
			}
			chunks = append(chunks, &Chunk{
				ID:       fin.id,
				Position: work.position,
				Mesh:     fin.mesh,
			})
		default:
			return chunks
		}
	}
}

/** @brief Returns the number of chunk builds still in flight. */
func (cm *ChunkManager) PendingCount() int {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	return len(cm.pending)
}

func (cm *ChunkManager) Shutdown() error {
	cm.mutex.Lock()
	cm.shutDown = true
	cm.mutex.Unlock()
	return cm.jobs.Shutdown()
}
