package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_OrderAndTarget(t *testing.T) {
	owner := "owner"
	d := NewDispatcher(owner)

	var calls []string
	d.AddEventListener("update", func(e Event) {
		calls = append(calls, "a")
		assert.Equal(t, owner, e.Target)
		assert.Equal(t, Type("update"), e.Type)
	})
	d.AddEventListener("update", func(e Event) { calls = append(calls, "b") })
	d.AddEventListener("other", func(e Event) { calls = append(calls, "x") })

	d.DispatchEvent(Event{Type: "update"})
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestDispatcher_RemoveAndHas(t *testing.T) {
	d := NewDispatcher(nil)
	count := 0
	h := d.AddEventListener("control", func(Event) { count++ })
	require.True(t, d.HasEventListener("control", h))
	assert.False(t, d.HasEventListener("update", h))

	d.RemoveEventListener("control", h)
	assert.False(t, d.HasEventListener("control", h))
	d.DispatchEvent(Event{Type: "control"})
	assert.Equal(t, 0, count)

	// removing twice or from an unknown type is harmless
	d.RemoveEventListener("control", h)
	d.RemoveEventListener("nope", h)
}

func TestDispatcher_MutationDuringDispatchUsesSnapshot(t *testing.T) {
	d := NewDispatcher(nil)
	var calls []string
	var second Handle

	d.AddEventListener("update", func(Event) {
		calls = append(calls, "first")
		d.RemoveEventListener("update", second)
		d.AddEventListener("update", func(Event) { calls = append(calls, "late") })
	})
	second = d.AddEventListener("update", func(Event) { calls = append(calls, "second") })

	d.DispatchEvent(Event{Type: "update"})
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	d.DispatchEvent(Event{Type: "update"})
	assert.Equal(t, []string{"first", "late"}, calls)
}

func TestListeners_HandlesAreUnique(t *testing.T) {
	var a, b Listeners[int]
	ha := a.Add(func(int) {})
	hb := b.Add(func(int) {})
	assert.NotEqual(t, ha, hb)
	assert.False(t, a.Remove(hb))
	assert.True(t, a.Remove(ha))
	assert.Equal(t, 0, a.Len())
}
