package shader

import (
	"fmt"
)

// Uniform block layout. view_position sits at byte 0 with vec4 alignment
// (4 bytes of padding before the matrix), view_proj at byte 16 as sixteen
// column-major float32. Field order, offsets and types are a bit-exact
// contract with callers that bind this block.
const (
	UNIFORM_OFFSET_VIEW_POSITION uint32 = 0
	UNIFORM_OFFSET_VIEW_PROJ     uint32 = 16
	/** @brief The total size in bytes of the packed uniform block. */
	UNIFORM_BLOCK_SIZE uint32 = 80
)

/**
 * @brief Packs the uniform block into buf at the wire layout. The padding
 * bytes between view_position and view_proj are zeroed. buf must be at
 * least UNIFORM_BLOCK_SIZE bytes.
 */
func (u *FrameUniforms) Encode(buf []byte) error {
	if uint32(len(buf)) < UNIFORM_BLOCK_SIZE {
		return fmt.Errorf("uniform buffer too small: %d bytes, need %d", len(buf), UNIFORM_BLOCK_SIZE)
	}
	putVec3(buf, UNIFORM_OFFSET_VIEW_POSITION, u.ViewPosition)
	putFloat32(buf, UNIFORM_OFFSET_VIEW_POSITION+12, 0)
	for i := uint32(0); i < 16; i++ {
		putFloat32(buf, UNIFORM_OFFSET_VIEW_PROJ+i*4, u.ViewProj.Data[i])
	}
	return nil
}

/** @brief Unpacks a uniform block from buf. */
func DecodeFrameUniforms(buf []byte) (FrameUniforms, error) {
	if uint32(len(buf)) < UNIFORM_BLOCK_SIZE {
		return FrameUniforms{}, fmt.Errorf("uniform buffer too small: %d bytes, need %d", len(buf), UNIFORM_BLOCK_SIZE)
	}
	out := FrameUniforms{}
	out.ViewPosition = getVec3(buf, UNIFORM_OFFSET_VIEW_POSITION)
	for i := uint32(0); i < 16; i++ {
		out.ViewProj.Data[i] = getFloat32(buf, UNIFORM_OFFSET_VIEW_PROJ+i*4)
	}
	return out, nil
}
