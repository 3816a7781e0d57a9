package wire

// Type is the leading byte of every entity-control datagram and selects the
// layout of the rest of the packet.
type Type byte

const (
	// EntityAdd introduces a new entity with its full transform and material
	EntityAdd Type = 0x10
	// EntityEdit updates a subset of an existing entity's transform
	EntityEdit Type = 0x11
	// EntityErase removes an entity
	EntityErase Type = 0x12
)

func (t Type) String() string {
	switch t {
	case EntityAdd:
		return "EntityAdd"
	case EntityEdit:
		return "EntityEdit"
	case EntityErase:
		return "EntityErase"
	}
	return "Unknown"
}

// Message is any entity-control message that can travel in one datagram.
type Message interface {
	Type() Type
}

// Vec3 is three little-endian f32 on the wire, (x, y, z) in meters.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a rotation as four little-endian f32 (x, y, z, w). The codec does
// not normalize: a non-unit quaternion is a nonsensical but valid payload.
type Quat struct {
	X, Y, Z, W float32
}

// EntityAddMessage introduces an entity. String fields must not contain an
// embedded NUL byte, they are NUL-terminated on the wire. ModelURL and
// TextureURL may be empty. Color components are RGB in 0..1 by convention,
// not enforced.
type EntityAddMessage struct {
	ID         uint64
	Name       string
	Position   Vec3
	Rotation   Quat
	Dimensions Vec3
	ModelURL   string
	TextureURL string
	Color      Vec3
}

// Type returns the message type
func (m *EntityAddMessage) Type() Type { return EntityAdd }

// Transform field presence bits of an EntityEditMessage, in wire order.
const (
	hasPosition   byte = 0x01
	hasRotation   byte = 0x02
	hasDimensions byte = 0x04
)

// EntityEditMessage updates a subset of an entity's transform. A nil field is
// absent: it contributes no bytes on the wire and must be left unspecified on
// the receiving side, never zero-filled.
type EntityEditMessage struct {
	ID         uint64
	Position   *Vec3
	Rotation   *Quat
	Dimensions *Vec3
}

// Type returns the message type
func (m *EntityEditMessage) Type() Type { return EntityEdit }

// Flags returns the present-bits byte recording which transform fields the
// message carries.
func (m *EntityEditMessage) Flags() byte {
	var flags byte
	if m.Position != nil {
		flags |= hasPosition
	}
	if m.Rotation != nil {
		flags |= hasRotation
	}
	if m.Dimensions != nil {
		flags |= hasDimensions
	}
	return flags
}

// EntityEraseMessage removes an entity. No payload beyond the id.
type EntityEraseMessage struct {
	ID uint64
}

// Type returns the message type
func (m *EntityEraseMessage) Type() Type { return EntityErase }
