package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/terravox/engine/shader"
)

// Binding indices of the two attribute streams. Binding 0 advances per
// vertex, binding 1 per instance.
const (
	VERTEX_BUFFER_BINDING   uint32 = 0
	INSTANCE_BUFFER_BINDING uint32 = 1
)

func attributeFormat(f shader.AttributeFormat) vk.Format {
	switch f {
	case shader.ATTRIBUTE_FORMAT_FLOAT32_2:
		return vk.FormatR32g32Sfloat
	case shader.ATTRIBUTE_FORMAT_FLOAT32_3:
		return vk.FormatR32g32b32Sfloat
	case shader.ATTRIBUTE_FORMAT_FLOAT32_4:
		return vk.FormatR32g32b32a32Sfloat
	}
	return vk.FormatUndefined
}

/**
 * @brief Returns the binding descriptions for the vertex and instance
 * streams at the wire strides the shader package defines.
 */
func BindingDescriptions() []vk.VertexInputBindingDescription {
	return []vk.VertexInputBindingDescription{
		{
			Binding:   VERTEX_BUFFER_BINDING,
			Stride:    shader.VERTEX_STRIDE,
			InputRate: vk.VertexInputRateVertex, // Move to next data entry for each vertex.
		},
		{
			Binding:   INSTANCE_BUFFER_BINDING,
			Stride:    shader.INSTANCE_STRIDE,
			InputRate: vk.VertexInputRateInstance, // Move to next data entry for each instance.
		},
	}
}

/**
 * @brief Returns the attribute descriptions for every slot of the wire
 * contract: locations 0-2 from the vertex stream, 5-8 from the instance
 * stream.
 */
func AttributeDescriptions() []vk.VertexInputAttributeDescription {
	attributes := make([]vk.VertexInputAttributeDescription, 0, 7)
	for _, attr := range shader.VertexLayout() {
		attributes = append(attributes, vk.VertexInputAttributeDescription{
			Location: attr.Slot,
			Binding:  VERTEX_BUFFER_BINDING,
			Format:   attributeFormat(attr.Format),
			Offset:   attr.Offset,
		})
	}
	for _, attr := range shader.InstanceLayout() {
		attributes = append(attributes, vk.VertexInputAttributeDescription{
			Location: attr.Slot,
			Binding:  INSTANCE_BUFFER_BINDING,
			Format:   attributeFormat(attr.Format),
			Offset:   attr.Offset,
		})
	}
	return attributes
}

/**
 * @brief Assembles the complete vertex input state for a pipeline built
 * against this vertex stage. Pipeline creation itself stays with the
 * caller; this only describes the input interface.
 */
func VertexInputState() vk.PipelineVertexInputStateCreateInfo {
	bindings := BindingDescriptions()
	attributes := AttributeDescriptions()

	vertexInputInfo := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindings)),
		PVertexBindingDescriptions:      bindings,
		VertexAttributeDescriptionCount: uint32(len(attributes)),
		PVertexAttributeDescriptions:    attributes,
	}
	return vertexInputInfo
}
