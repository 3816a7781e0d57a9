package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/MayaTheShy/Starworld/constants"
	"github.com/MayaTheShy/Starworld/errors"
)

// Decode parses the bytes of one datagram back into a typed message. The
// leading type byte selects the variant. It never reads past the end of the
// buffer: a truncated fixed prefix or a string field whose NUL terminator is
// missing is a decode error, as is an unrecognized type byte. Trailing bytes
// after a complete message are ignored, the sender owns datagram framing.
func Decode(data []byte) (Message, error) {
	r := &reader{buf: data}
	t, err := r.uint8("type")
	if err != nil {
		return nil, err
	}

	switch Type(t) {
	case EntityAdd:
		return decodeAdd(r)
	case EntityEdit:
		return decodeEdit(r)
	case EntityErase:
		return decodeErase(r)
	}
	return nil, errors.NewError(constants.ErrUnknownPacketType, errors.ErrDecodeCode, map[string]string{
		"type": fmt.Sprintf("0x%02x", t),
	})
}

func decodeAdd(r *reader) (*EntityAddMessage, error) {
	m := &EntityAddMessage{}
	var err error
	if m.ID, err = r.uint64("id"); err != nil {
		return nil, err
	}
	if m.Name, err = r.cstring("name"); err != nil {
		return nil, err
	}
	if m.Position, err = r.vec3("position"); err != nil {
		return nil, err
	}
	if m.Rotation, err = r.quat("rotation"); err != nil {
		return nil, err
	}
	if m.Dimensions, err = r.vec3("dimensions"); err != nil {
		return nil, err
	}
	if m.ModelURL, err = r.cstring("modelUrl"); err != nil {
		return nil, err
	}
	if m.TextureURL, err = r.cstring("textureUrl"); err != nil {
		return nil, err
	}
	if m.Color, err = r.vec3("color"); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeEdit(r *reader) (*EntityEditMessage, error) {
	m := &EntityEditMessage{}
	var err error
	if m.ID, err = r.uint64("id"); err != nil {
		return nil, err
	}
	flags, err := r.uint8("flags")
	if err != nil {
		return nil, err
	}
	if flags&hasPosition != 0 {
		v, err := r.vec3("position")
		if err != nil {
			return nil, err
		}
		m.Position = &v
	}
	if flags&hasRotation != 0 {
		q, err := r.quat("rotation")
		if err != nil {
			return nil, err
		}
		m.Rotation = &q
	}
	if flags&hasDimensions != 0 {
		v, err := r.vec3("dimensions")
		if err != nil {
			return nil, err
		}
		m.Dimensions = &v
	}
	return m, nil
}

func decodeErase(r *reader) (*EntityEraseMessage, error) {
	id, err := r.uint64("id")
	if err != nil {
		return nil, err
	}
	return &EntityEraseMessage{ID: id}, nil
}

// reader walks a buffer without ever indexing past its end.
type reader struct {
	buf []byte
	off int
}

func (r *reader) take(n int, field string) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, errors.NewError(constants.ErrBufferTooShort, errors.ErrDecodeCode, map[string]string{
			"field": field,
		})
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint8(field string) (byte, error) {
	b, err := r.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint64(field string) (uint64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) float32(field string) (float32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (r *reader) vec3(field string) (Vec3, error) {
	var v Vec3
	var err error
	if v.X, err = r.float32(field); err != nil {
		return Vec3{}, err
	}
	if v.Y, err = r.float32(field); err != nil {
		return Vec3{}, err
	}
	if v.Z, err = r.float32(field); err != nil {
		return Vec3{}, err
	}
	return v, nil
}

func (r *reader) quat(field string) (Quat, error) {
	var q Quat
	var err error
	if q.X, err = r.float32(field); err != nil {
		return Quat{}, err
	}
	if q.Y, err = r.float32(field); err != nil {
		return Quat{}, err
	}
	if q.Z, err = r.float32(field); err != nil {
		return Quat{}, err
	}
	if q.W, err = r.float32(field); err != nil {
		return Quat{}, err
	}
	return q, nil
}

func (r *reader) cstring(field string) (string, error) {
	rest := r.buf[r.off:]
	i := bytes.IndexByte(rest, 0x00)
	if i < 0 {
		return "", errors.NewError(constants.ErrMissingTerminator, errors.ErrDecodeCode, map[string]string{
			"field": field,
		})
	}
	s := string(rest[:i])
	r.off += i + 1
	return s, nil
}
