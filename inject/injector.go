// Package inject hand-feeds entity-control datagrams to a running client, the
// way an entity server would. Fire and forget: one datagram per message, no
// handshake, no acknowledgment, no retry; delivery and ordering are the
// network's problem.
package inject

import (
	"net"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MayaTheShy/Starworld/logger"
	"github.com/MayaTheShy/Starworld/wire"
)

// Injector encodes entity messages and writes each one as a single datagram
// to one fixed destination, keeping a sender-side map of the entities it
// believes are alive.
type Injector struct {
	conn  *net.UDPConn
	scene SceneMap
	runID string
}

// NewInjector dials the target client socket. 40103 is the deployment's
// conventional port, not a protocol requirement.
func NewInjector(host string, port int) (*Injector, error) {
	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, err
	}

	inj := &Injector{
		conn:  conn,
		scene: SceneMap{},
		runID: uuid.New().String(),
	}
	logger.Info("injector ready",
		zap.String("target", raddr.String()),
		zap.String("run", inj.runID))
	return inj, nil
}

// RunID tags every log line of this injector, one fresh UUID per run.
func (inj *Injector) RunID() string {
	return inj.runID
}

// Scene returns the sender-side bookkeeping of live entities.
func (inj *Injector) Scene() SceneMap {
	return inj.scene
}

// Close releases the socket. Entities already injected stay alive on the
// receiving side.
func (inj *Injector) Close() error {
	return inj.conn.Close()
}

// Add introduces an entity and records it as live.
func (inj *Injector) Add(e *Entity) error {
	msg := &wire.EntityAddMessage{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Rotation:   e.Rotation,
		Dimensions: e.Dimensions,
		ModelURL:   e.ModelURL,
		TextureURL: e.TextureURL,
		Color:      e.Color,
	}
	if err := inj.send(msg); err != nil {
		return err
	}
	inj.scene.Add(e)

	logger.Info("sent EntityAdd",
		zap.Uint64("id", e.ID),
		zap.String("name", e.Name),
		zap.String("run", inj.runID))
	return nil
}

// Edit updates a subset of an entity's transform. Nil fields are absent from
// the wire, the receiver must leave them untouched. Bookkeeping is updated
// for the fields actually sent.
func (inj *Injector) Edit(id uint64, position *wire.Vec3, rotation *wire.Quat, dimensions *wire.Vec3) error {
	msg := &wire.EntityEditMessage{
		ID:         id,
		Position:   position,
		Rotation:   rotation,
		Dimensions: dimensions,
	}
	if err := inj.send(msg); err != nil {
		return err
	}

	if e := inj.scene.Get(id); e != nil {
		if position != nil {
			e.Position = *position
		}
		if rotation != nil {
			e.Rotation = *rotation
		}
		if dimensions != nil {
			e.Dimensions = *dimensions
		}
	}

	logger.Debug("sent EntityEdit",
		zap.Uint64("id", id),
		zap.Uint8("flags", msg.Flags()),
		zap.String("run", inj.runID))
	return nil
}

// Erase removes an entity and drops it from the bookkeeping.
func (inj *Injector) Erase(id uint64) error {
	if err := inj.send(&wire.EntityEraseMessage{ID: id}); err != nil {
		return err
	}
	inj.scene.Del(id)

	logger.Info("sent EntityErase",
		zap.Uint64("id", id),
		zap.String("run", inj.runID))
	return nil
}

// send writes one encoded message as exactly one datagram. Transport errors
// are surfaced unchanged, never masked or retried.
func (inj *Injector) send(msg wire.Message) error {
	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}
	_, err = inj.conn.Write(data)
	return err
}
