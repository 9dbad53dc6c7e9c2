package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawLogTakeInOrder(t *testing.T) {
	raw := NewRawLog[string]()
	raw.Append(ChildList[string]{Node: "r", Added: []string{"a"}})
	raw.Append(Attribute[string]{Node: "a", Name: "class"})
	raw.Append(ChildList[string]{Node: "r", Removed: []string{"a"}})
	require.Equal(t, 3, raw.Len())
	//
	first := raw.Take(2)
	require.Len(t, first, 2)
	assert.Equal(t, "r", first[0].Target())
	assert.Equal(t, Attribute[string]{Node: "a", Name: "class"}, first[1])
	assert.Equal(t, 1, raw.Len())
	//
	rest := raw.TakeRecords()
	require.Len(t, rest, 1)
	assert.Equal(t, []string{"a"}, rest[0].(ChildList[string]).Removed)
	assert.Equal(t, 0, raw.Len())
	assert.Nil(t, raw.TakeRecords())
}

func TestRawLogTakeMoreThanAvailable(t *testing.T) {
	raw := NewRawLog[int]()
	raw.Append(Attribute[int]{Node: 1, Name: "id"})
	batch := raw.Take(10)
	assert.Len(t, batch, 1)
	assert.Nil(t, raw.Take(0))
}

func TestEventLogDrain(t *testing.T) {
	log := NewEventLog[string]()
	log.Append(ElementAdded[string]{Node: "div"})
	log.Append(AttributeChanged[string]{Node: "span", Attribute: "class"})
	log.Append(ElementRemoved[string]{Node: "div"})
	//
	events := log.Events()
	require.Len(t, events, 3)
	assert.Equal(t, KindAdded, events[0].Kind())
	assert.Equal(t, KindAttribute, events[1].Kind())
	assert.Equal(t, "span", events[1].Element())
	assert.Equal(t, KindRemoved, events[2].Kind())
	//
	drained := log.Drain()
	assert.Equal(t, events, drained)
	assert.Equal(t, 0, log.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "added", KindAdded.String())
	assert.Equal(t, "removed", KindRemoved.String())
	assert.Equal(t, "attribute", KindAttribute.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "added div", ElementAdded[string]{Node: "div"}.String())
	assert.Equal(t, "attribute p[id]", AttributeChanged[string]{Node: "p", Attribute: "id"}.String())
	assert.Equal(t, "childList(r, +1, -0)", ChildList[string]{Node: "r", Added: []string{"x"}}.String())
}
