package world

import (
	"github.com/aquilax/go-perlin"

	"github.com/spaghettifunk/terravox/engine/math"
)

// FBM parameters matching the terrain's fractal noise: four octaves with
// halved amplitude and doubled frequency per octave.
const (
	noiseAlpha     float64 = 2.0
	noiseBeta      float64 = 2.0
	noiseOctaves   int32   = 4
	noiseFrequency float64 = 0.05
	noiseAmplitude float64 = 16.0
)

/**
 * @brief TerrainGenerator samples fractal noise into solid/air voxel
 * columns. Safe to share between goroutines once created; sampling does
 * not mutate the generator.
 */
type TerrainGenerator struct {
	noise *perlin.Perlin
}

func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

/**
 * @brief Fills a (ChunkSize+2)^3 occupancy grid for the chunk at the given
 * location. The one-voxel halo around the chunk carries the neighbouring
 * columns so face culling at chunk borders sees across the edge.
 */
func (tg *TerrainGenerator) Heightmap(chunkLocation math.Vec2) [][][]bool {
	size := ChunkSize + 2
	heightMap := make([][][]bool, size)
	for x := 0; x < size; x++ {
		heightMap[x] = make([][]bool, size)
		for y := 0; y < size; y++ {
			heightMap[x][y] = make([]bool, size)
		}
	}

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			sample := tg.noise.Noise2D(
				(float64(x)+float64(chunkLocation.X))*noiseFrequency,
				(float64(z)+float64(chunkLocation.Y))*noiseFrequency,
			)
			stoneHeight := sample*noiseAmplitude + float64(ChunkSize)/2.0

			for y := 0; y < ChunkSize; y++ {
				heightMap[x][y][z] = float64(y) < stoneHeight
			}
		}
	}
	return heightMap
}

// visibleSides reports which faces of the voxel at pos border air. The
// caller guarantees pos is at least one voxel away from the grid edge.
func visibleSides(heightMap [][][]bool, x, y, z int) Sides {
	sides := SIDE_NONE

	if !heightMap[x-1][y][z] {
		sides |= SIDE_LEFT
	}
	if !heightMap[x+1][y][z] {
		sides |= SIDE_RIGHT
	}
	if y > 0 && !heightMap[x][y-1][z] {
		sides |= SIDE_BOTTOM
	}
	if !heightMap[x][y+1][z] {
		sides |= SIDE_TOP
	}
	if !heightMap[x][y][z-1] {
		sides |= SIDE_BACKWARD
	}
	if !heightMap[x][y][z+1] {
		sides |= SIDE_FORWARD
	}
	return sides
}

/**
 * @brief BuildChunkMesh generates the terrain occupancy for the chunk at
 * chunkLocation and meshes every solid voxel, emitting only the faces
 * that border air.
 */
func (tg *TerrainGenerator) BuildChunkMesh(chunkLocation math.Vec2) MeshData {
	heightMap := tg.Heightmap(chunkLocation)
	builder := NewMeshBuilder()

	for x := 1; x < ChunkSize+1; x++ {
		for y := 1; y < ChunkSize+1; y++ {
			for z := 1; z < ChunkSize+1; z++ {
				if heightMap[x][y][z] {
					builder.
						SetPosition(math.NewVec3(float32(x), float32(y), float32(z))).
						GenerateVoxel(visibleSides(heightMap, x, y, z))
				}
			}
		}
	}
	return builder.Build()
}
