package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"

	"github.com/MayaTheShy/Starworld/constants"
	"github.com/MayaTheShy/Starworld/errors"
)

// Encode serializes a message into the bytes of exactly one datagram. It is
// total for well-formed input; the only rejection is a string field carrying
// an embedded NUL byte, which would change meaning on the receiving side if
// it were silently truncated.
func Encode(m Message) ([]byte, error) {
	switch msg := m.(type) {
	case *EntityAddMessage:
		return encodeAdd(msg)
	case *EntityEditMessage:
		return encodeEdit(msg)
	case *EntityEraseMessage:
		return encodeErase(msg)
	}
	return nil, errors.NewError(constants.ErrInvalidMessage, errors.ErrEncodeCode)
}

func encodeAdd(m *EntityAddMessage) ([]byte, error) {
	w := &writer{}
	w.putUint8(byte(EntityAdd))
	w.putUint64(m.ID)
	if err := w.putCString("name", m.Name); err != nil {
		return nil, err
	}
	w.putVec3(m.Position)
	w.putQuat(m.Rotation)
	w.putVec3(m.Dimensions)
	if err := w.putCString("modelUrl", m.ModelURL); err != nil {
		return nil, err
	}
	if err := w.putCString("textureUrl", m.TextureURL); err != nil {
		return nil, err
	}
	w.putVec3(m.Color)
	return w.bytes(), nil
}

func encodeEdit(m *EntityEditMessage) ([]byte, error) {
	w := &writer{}
	w.putUint8(byte(EntityEdit))
	w.putUint64(m.ID)
	w.putUint8(m.Flags())
	// groups follow in fixed bit order, absent groups contribute zero bytes
	if m.Position != nil {
		w.putVec3(*m.Position)
	}
	if m.Rotation != nil {
		w.putQuat(*m.Rotation)
	}
	if m.Dimensions != nil {
		w.putVec3(*m.Dimensions)
	}
	return w.bytes(), nil
}

func encodeErase(m *EntityEraseMessage) ([]byte, error) {
	w := &writer{}
	w.putUint8(byte(EntityErase))
	w.putUint64(m.ID)
	return w.bytes(), nil
}

// writer accumulates little-endian fields, no padding between them.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) putUint8(v byte) {
	w.buf.WriteByte(v)
}

func (w *writer) putUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) putFloat32(v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf.Write(b[:])
}

func (w *writer) putVec3(v Vec3) {
	w.putFloat32(v.X)
	w.putFloat32(v.Y)
	w.putFloat32(v.Z)
}

func (w *writer) putQuat(q Quat) {
	w.putFloat32(q.X)
	w.putFloat32(q.Y)
	w.putFloat32(q.Z)
	w.putFloat32(q.W)
}

func (w *writer) putCString(field, s string) error {
	if strings.IndexByte(s, 0x00) >= 0 {
		return errors.NewError(constants.ErrStringHasNUL, errors.ErrEncodeCode, map[string]string{
			"field": field,
		})
	}
	w.buf.WriteString(s)
	w.buf.WriteByte(0x00)
	return nil
}
