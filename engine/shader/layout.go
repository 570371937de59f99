package shader

import (
	"encoding/binary"
	"fmt"
	m "math"

	"github.com/spaghettifunk/terravox/engine/math"
)

/** @brief The formats an attribute stream element can have. */
type AttributeFormat int

const (
	ATTRIBUTE_FORMAT_FLOAT32_2 AttributeFormat = iota
	ATTRIBUTE_FORMAT_FLOAT32_3
	ATTRIBUTE_FORMAT_FLOAT32_4
)

/** @brief Returns the size in bytes of one element of the format. */
func (f AttributeFormat) Size() uint32 {
	switch f {
	case ATTRIBUTE_FORMAT_FLOAT32_2:
		return 8
	case ATTRIBUTE_FORMAT_FLOAT32_3:
		return 12
	case ATTRIBUTE_FORMAT_FLOAT32_4:
		return 16
	}
	return 0
}

/**
 * @brief Describes a single attribute of a vertex or instance stream:
 * its shader slot, name, format and byte offset within the element.
 */
type AttributeDescription struct {
	/** @brief The logical shader slot (location). */
	Slot uint32
	/** @brief The attribute name. */
	Name string
	/** @brief The attribute format. */
	Format AttributeFormat
	/** @brief The byte offset from the start of the element. */
	Offset uint32
}

// Logical slot assignment of the attribute streaming interface. Slots 3
// and 4 are reserved. These values are a bit-exact contract with every
// caller that packs vertex or instance buffers: changing them breaks
// compatibility.
const (
	SLOT_POSITION      uint32 = 0
	SLOT_TEX_COORDS    uint32 = 1
	SLOT_NORMAL        uint32 = 2
	SLOT_MODEL_MATRIX0 uint32 = 5
	SLOT_MODEL_MATRIX1 uint32 = 6
	SLOT_MODEL_MATRIX2 uint32 = 7
	SLOT_MODEL_MATRIX3 uint32 = 8
)

const (
	/** @brief The size in bytes of one packed Vertex. */
	VERTEX_STRIDE uint32 = 32
	/** @brief The size in bytes of one packed InstanceTransform. */
	INSTANCE_STRIDE uint32 = 64
)

/**
 * @brief Returns the per-vertex attribute table: position, tex_coords and
 * normal, tightly packed.
 */
func VertexLayout() []AttributeDescription {
	return []AttributeDescription{
		{Slot: SLOT_POSITION, Name: "position", Format: ATTRIBUTE_FORMAT_FLOAT32_3, Offset: 0},
		{Slot: SLOT_TEX_COORDS, Name: "tex_coords", Format: ATTRIBUTE_FORMAT_FLOAT32_2, Offset: 12},
		{Slot: SLOT_NORMAL, Name: "normal", Format: ATTRIBUTE_FORMAT_FLOAT32_3, Offset: 20},
	}
}

/**
 * @brief Returns the per-instance attribute table: the four model matrix
 * columns in slot and byte order.
 */
func InstanceLayout() []AttributeDescription {
	return []AttributeDescription{
		{Slot: SLOT_MODEL_MATRIX0, Name: "model_matrix0", Format: ATTRIBUTE_FORMAT_FLOAT32_4, Offset: 0},
		{Slot: SLOT_MODEL_MATRIX1, Name: "model_matrix1", Format: ATTRIBUTE_FORMAT_FLOAT32_4, Offset: 16},
		{Slot: SLOT_MODEL_MATRIX2, Name: "model_matrix2", Format: ATTRIBUTE_FORMAT_FLOAT32_4, Offset: 32},
		{Slot: SLOT_MODEL_MATRIX3, Name: "model_matrix3", Format: ATTRIBUTE_FORMAT_FLOAT32_4, Offset: 48},
	}
}

func putFloat32(buf []byte, offset uint32, value float32) {
	binary.LittleEndian.PutUint32(buf[offset:], m.Float32bits(value))
}

func getFloat32(buf []byte, offset uint32) float32 {
	return m.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func putVec2(buf []byte, offset uint32, v math.Vec2) {
	putFloat32(buf, offset, v.X)
	putFloat32(buf, offset+4, v.Y)
}

func putVec3(buf []byte, offset uint32, v math.Vec3) {
	putFloat32(buf, offset, v.X)
	putFloat32(buf, offset+4, v.Y)
	putFloat32(buf, offset+8, v.Z)
}

func putVec4(buf []byte, offset uint32, v math.Vec4) {
	putFloat32(buf, offset, v.X)
	putFloat32(buf, offset+4, v.Y)
	putFloat32(buf, offset+8, v.Z)
	putFloat32(buf, offset+12, v.W)
}

func getVec2(buf []byte, offset uint32) math.Vec2 {
	return math.Vec2{X: getFloat32(buf, offset), Y: getFloat32(buf, offset+4)}
}

func getVec3(buf []byte, offset uint32) math.Vec3 {
	return math.Vec3{X: getFloat32(buf, offset), Y: getFloat32(buf, offset+4), Z: getFloat32(buf, offset+8)}
}

func getVec4(buf []byte, offset uint32) math.Vec4 {
	return math.Vec4{X: getFloat32(buf, offset), Y: getFloat32(buf, offset+4), Z: getFloat32(buf, offset+8), W: getFloat32(buf, offset+12)}
}

/**
 * @brief Packs a single vertex into buf at the wire layout (little-endian
 * float32, offsets per VertexLayout). buf must be at least VERTEX_STRIDE
 * bytes.
 */
func EncodeVertex(buf []byte, v Vertex) error {
	if uint32(len(buf)) < VERTEX_STRIDE {
		return fmt.Errorf("vertex buffer too small: %d bytes, need %d", len(buf), VERTEX_STRIDE)
	}
	putVec3(buf, 0, v.Position)
	putVec2(buf, 12, v.TexCoords)
	putVec3(buf, 20, v.Normal)
	return nil
}

/** @brief Unpacks a single vertex from buf. */
func DecodeVertex(buf []byte) (Vertex, error) {
	if uint32(len(buf)) < VERTEX_STRIDE {
		return Vertex{}, fmt.Errorf("vertex buffer too small: %d bytes, need %d", len(buf), VERTEX_STRIDE)
	}
	return Vertex{
		Position:  getVec3(buf, 0),
		TexCoords: getVec2(buf, 12),
		Normal:    getVec3(buf, 20),
	}, nil
}

/**
 * @brief Packs a single instance transform into buf: four vec4 columns in
 * fixed order. buf must be at least INSTANCE_STRIDE bytes.
 */
func EncodeInstance(buf []byte, it InstanceTransform) error {
	if uint32(len(buf)) < INSTANCE_STRIDE {
		return fmt.Errorf("instance buffer too small: %d bytes, need %d", len(buf), INSTANCE_STRIDE)
	}
	putVec4(buf, 0, it.Model0)
	putVec4(buf, 16, it.Model1)
	putVec4(buf, 32, it.Model2)
	putVec4(buf, 48, it.Model3)
	return nil
}

/** @brief Unpacks a single instance transform from buf. */
func DecodeInstance(buf []byte) (InstanceTransform, error) {
	if uint32(len(buf)) < INSTANCE_STRIDE {
		return InstanceTransform{}, fmt.Errorf("instance buffer too small: %d bytes, need %d", len(buf), INSTANCE_STRIDE)
	}
	return InstanceTransform{
		Model0: getVec4(buf, 0),
		Model1: getVec4(buf, 16),
		Model2: getVec4(buf, 32),
		Model3: getVec4(buf, 48),
	}, nil
}

/** @brief Packs a whole vertex stream at VERTEX_STRIDE spacing. */
func EncodeVertexBuffer(vertices []Vertex) []byte {
	buf := make([]byte, uint32(len(vertices))*VERTEX_STRIDE)
	for i, v := range vertices {
		_ = EncodeVertex(buf[uint32(i)*VERTEX_STRIDE:], v)
	}
	return buf
}

/** @brief Packs a whole instance stream at INSTANCE_STRIDE spacing. */
func EncodeInstanceBuffer(instances []InstanceTransform) []byte {
	buf := make([]byte, uint32(len(instances))*INSTANCE_STRIDE)
	for i, it := range instances {
		_ = EncodeInstance(buf[uint32(i)*INSTANCE_STRIDE:], it)
	}
	return buf
}
