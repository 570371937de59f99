package world

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/terravox/engine/math"
	"github.com/spaghettifunk/terravox/engine/shader"
)

/** @brief The edge length of a chunk in voxels. */
const ChunkSize int = 32

/** @brief A bitmask of the visible faces of a voxel. */
type Sides uint32

const (
	SIDE_NONE     Sides = 0
	SIDE_TOP      Sides = 1 << 0
	SIDE_BOTTOM   Sides = 1 << 1
	SIDE_LEFT     Sides = 1 << 2
	SIDE_RIGHT    Sides = 1 << 3
	SIDE_FORWARD  Sides = 1 << 4
	SIDE_BACKWARD Sides = 1 << 5
)

func (s Sides) Has(side Sides) bool {
	return s&side != 0
}

// The eight corners of a unit cube centered on the voxel position.
var cubeCoordinates = [8]math.Vec3{
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
}

// One tile of a 16x16 texture atlas.
var tileUVs = [4]math.Vec2{
	{X: 0.125, Y: 1.0 - 0.9375},
	{X: 0.1875, Y: 1.0 - 0.9375},
	{X: 0.125, Y: 1.0 - 1.0},
	{X: 0.1875, Y: 1.0 - 1.0},
}

var quadUVOrder = [4]int{3, 2, 0, 1}

type sideQuad struct {
	side    Sides
	corners [4]int
	normal  math.Vec3
}

// Corner order per face keeps a consistent winding; the normal is the
// outward face normal fed to the vertex stage.
var sideQuads = [6]sideQuad{
	{SIDE_TOP, [4]int{7, 6, 5, 4}, math.Vec3{X: 0, Y: 1, Z: 0}},
	{SIDE_BOTTOM, [4]int{0, 1, 2, 3}, math.Vec3{X: 0, Y: -1, Z: 0}},
	{SIDE_LEFT, [4]int{7, 4, 0, 3}, math.Vec3{X: -1, Y: 0, Z: 0}},
	{SIDE_RIGHT, [4]int{5, 6, 2, 1}, math.Vec3{X: 1, Y: 0, Z: 0}},
	{SIDE_FORWARD, [4]int{4, 5, 1, 0}, math.Vec3{X: 0, Y: 0, Z: 1}},
	{SIDE_BACKWARD, [4]int{6, 7, 3, 2}, math.Vec3{X: 0, Y: 0, Z: -1}},
}

/**
 * @brief A built chunk mesh: the vertex and index streams ready to be
 * packed for the vertex stage.
 */
type MeshData struct {
	/** @brief A unique identifier of the generated mesh. */
	ID uuid.UUID
	/** @brief The vertex stream. */
	Vertices []shader.Vertex
	/** @brief The index stream, three indices per triangle. */
	Indices []uint32
}

/**
 * @brief MeshBuilder accumulates voxel quads into a single mesh. It keeps
 * a cursor so the caller can place voxels without repeating coordinates.
 */
type MeshBuilder struct {
	currentCubePos math.Vec3
	vertices       []shader.Vertex
	indices        []uint32
	indexOffset    uint32
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{
		vertices: make([]shader.Vertex, 0),
		indices:  make([]uint32, 0),
	}
}

/** @brief Moves the cursor to the provided voxel position. */
func (mb *MeshBuilder) SetPosition(position math.Vec3) *MeshBuilder {
	mb.currentCubePos = position
	return mb
}

/** @brief Moves the cursor by the provided delta. */
func (mb *MeshBuilder) MovePosition(delta math.Vec3) *MeshBuilder {
	mb.currentCubePos = mb.currentCubePos.Add(delta)
	return mb
}

/**
 * @brief Emits one quad for every face present in sides, at the current
 * cursor position.
 */
func (mb *MeshBuilder) GenerateVoxel(sides Sides) *MeshBuilder {
	for _, quad := range sideQuads {
		if sides.Has(quad.side) {
			mb.buildQuad(quad)
		}
	}
	return mb
}

func (mb *MeshBuilder) buildQuad(quad sideQuad) {
	for i, corner := range quad.corners {
		mb.vertices = append(mb.vertices, shader.Vertex{
			Position:  cubeCoordinates[corner].Add(mb.currentCubePos),
			TexCoords: tileUVs[quadUVOrder[i]],
			Normal:    quad.normal,
		})
	}
	mb.indices = append(mb.indices,
		3+mb.indexOffset,
		1+mb.indexOffset,
		0+mb.indexOffset,
		3+mb.indexOffset,
		2+mb.indexOffset,
		1+mb.indexOffset,
	)
	mb.indexOffset += 4
}

/** @brief Finalizes the accumulated quads into a MeshData. */
func (mb *MeshBuilder) Build() MeshData {
	return MeshData{
		ID:       uuid.New(),
		Vertices: mb.vertices,
		Indices:  mb.indices,
	}
}
