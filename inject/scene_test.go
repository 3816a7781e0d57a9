package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneMap(t *testing.T) {
	t.Parallel()

	sm := SceneMap{}
	a := &Entity{ID: 1, Name: "a"}
	b := &Entity{ID: 2, Name: "b"}

	sm.Add(a)
	sm.Add(b)
	assert.Equal(t, a, sm.Get(1))
	assert.ElementsMatch(t, []uint64{1, 2}, sm.IDs())
	assert.ElementsMatch(t, []*Entity{a, b}, sm.Values())

	only := sm.Filter(func(e *Entity) bool { return e.Name == "b" })
	assert.Len(t, only, 1)
	assert.Equal(t, b, only.Get(2))

	sm.Del(1)
	assert.Nil(t, sm.Get(1))
	assert.Len(t, sm, 1)
}

func TestSceneMapReAddOverwrites(t *testing.T) {
	t.Parallel()

	sm := SceneMap{}
	sm.Add(&Entity{ID: 1, Name: "first"})
	sm.Add(&Entity{ID: 1, Name: "second"})
	assert.Len(t, sm, 1)
	assert.Equal(t, "second", sm.Get(1).Name)
}
