package inject

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/MayaTheShy/Starworld/logger"
	"github.com/MayaTheShy/Starworld/wire"
)

var identity = wire.Quat{W: 1}

// DemoScene introduces five colored placeholder primitives in front of the
// viewer.
func (inj *Injector) DemoScene() error {
	entities := []*Entity{
		{
			ID:         1001,
			Name:       "RedCube",
			Position:   wire.Vec3{X: 0, Y: 1.5, Z: -2},
			Rotation:   identity,
			Dimensions: wire.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
			Color:      wire.Vec3{X: 1},
		},
		{
			ID:         1002,
			Name:       "GreenSphere",
			Position:   wire.Vec3{X: -1, Y: 1.5, Z: -2.5},
			Rotation:   identity,
			Dimensions: wire.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			Color:      wire.Vec3{Y: 1},
		},
		{
			ID:         1003,
			Name:       "BlueBox",
			Position:   wire.Vec3{X: 1, Y: 1.5, Z: -2.5},
			Dimensions: wire.Vec3{X: 0.5, Y: 0.2, Z: 0.3},
			Rotation:   identity,
			Color:      wire.Vec3{Z: 1},
		},
		{
			ID:         1004,
			Name:       "YellowPillar",
			Position:   wire.Vec3{X: 0, Y: 1.5, Z: -4},
			Rotation:   identity,
			Dimensions: wire.Vec3{X: 0.2, Y: 0.8, Z: 0.2},
			Color:      wire.Vec3{X: 1, Y: 1},
		},
		{
			ID:         1005,
			Name:       "RotatedCube",
			Position:   wire.Vec3{X: 0, Y: 1, Z: -1.5},
			Rotation:   yawQuat(math.Pi / 4),
			Dimensions: wire.Vec3{X: 0.25, Y: 0.25, Z: 0.25},
			Color:      wire.Vec3{Y: 1, Z: 1},
		},
	}

	for _, e := range entities {
		if err := inj.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// Animate drives the demo scene: the red cube circles, the green sphere
// spins, the blue box pulses. One edit batch per tick until the frame budget
// runs out or ctx is canceled.
func (inj *Injector) Animate(ctx context.Context, frames int, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frame := 0; frame < frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		t := float64(frame) / 10.0

		pos := wire.Vec3{
			X: float32(math.Sin(t) * 0.5),
			Y: 1.5,
			Z: float32(-2 + math.Cos(t)*0.5),
		}
		if err := inj.Edit(1001, &pos, nil, nil); err != nil {
			return err
		}

		rot := yawQuat(t)
		if err := inj.Edit(1002, nil, &rot, nil); err != nil {
			return err
		}

		scale := float32(0.3 + math.Abs(math.Sin(t))*0.3)
		dim := wire.Vec3{X: scale, Y: 0.2, Z: scale}
		if err := inj.Edit(1003, nil, nil, &dim); err != nil {
			return err
		}
	}

	logger.Infof("animation complete, %d frames", frames)
	return nil
}

// Cleanup erases every entity this injector still believes is alive, lowest
// id first so repeated runs log identically.
func (inj *Injector) Cleanup() error {
	ids := inj.scene.IDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := inj.Erase(id); err != nil {
			return err
		}
	}
	return nil
}

// yawQuat rotates angle radians about the world Y axis.
func yawQuat(angle float64) wire.Quat {
	return wire.Quat{
		Y: float32(math.Sin(angle / 2)),
		W: float32(math.Cos(angle / 2)),
	}
}
