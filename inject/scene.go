package inject

import (
	"bytes"
	"fmt"

	"github.com/MayaTheShy/Starworld/wire"
)

// Entity is the sender-side record of one live injected entity. The id is
// caller-chosen and unique in this bookkeeping only; the wire format places
// no uniqueness constraint, the receiver decides what duplicates mean.
type Entity struct {
	ID         uint64
	Name       string
	Position   wire.Vec3
	Rotation   wire.Quat
	Dimensions wire.Vec3
	ModelURL   string
	TextureURL string
	Color      wire.Vec3
}

func (e *Entity) String() string {
	return fmt.Sprintf("Entity<%d:%s>", e.ID, e.Name)
}

// SceneMap is the data structure for maintaining entity IDs to live entities
type SceneMap map[uint64]*Entity

// Add adds a new entity to SceneMap
func (sm SceneMap) Add(entity *Entity) {
	sm[entity.ID] = entity
}

// Del deletes an entity from SceneMap
func (sm SceneMap) Del(id uint64) {
	delete(sm, id)
}

// Get returns the Entity of specified entity ID in SceneMap
func (sm SceneMap) Get(id uint64) *Entity {
	return sm[id]
}

// IDs return keys of the SceneMap in a slice
func (sm SceneMap) IDs() (ids []uint64) {
	for eid := range sm {
		ids = append(ids, eid)
	}
	return
}

// Values return values of the SceneMap in a slice
func (sm SceneMap) Values() (vals []*Entity) {
	for _, e := range sm {
		vals = append(vals, e)
	}
	return
}

// Filter filter map
func (sm SceneMap) Filter(filter func(*Entity) bool) SceneMap {
	r := SceneMap{}
	for _, e := range sm {
		if filter(e) {
			r.Add(e)
		}
	}
	return r
}

func (sm SceneMap) String() string {
	b := bytes.Buffer{}
	b.WriteString("{")
	first := true
	for _, entity := range sm {
		if !first {
			b.WriteString(", ")
		} else {
			first = false
		}
		b.WriteString(entity.String())
	}
	b.WriteString("}")
	return b.String()
}
