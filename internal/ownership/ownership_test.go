package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	id    string
	owner string
}

func (n note) GetID() string      { return n.id }
func (n note) GetOwnerID() string { return n.owner }

func notes() []note {
	return []note{{"n1", "alice"}, {"n2", "bob"}, {"n3", "alice"}}
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize("alice", "alice"))
	assert.ErrorIs(t, Authorize("alice", "bob"), ErrForbidden)
	assert.ErrorIs(t, Authorize("", ""), ErrForbidden)
}

func TestRemoveByID(t *testing.T) {
	items := notes()

	got, err := RemoveByID(items, "n2")
	require.NoError(t, err)
	assert.Equal(t, []note{{"n1", "alice"}, {"n3", "alice"}}, got)
	assert.Equal(t, notes(), items, "input must not be mutated")

	got, err = RemoveByID(items, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, items, got)
}

func TestRemove(t *testing.T) {
	got, err := Remove(notes(), "n3", "alice")
	require.NoError(t, err)
	assert.Equal(t, []note{{"n1", "alice"}, {"n2", "bob"}}, got, "removes the located item, not the requester's first")

	_, err = Remove(notes(), "n2", "alice")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = Remove(notes(), "n9", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveOwnedBy(t *testing.T) {
	got, err := RemoveOwnedBy(notes(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []note{{"n1", "alice"}, {"n3", "alice"}}, got)

	_, err = RemoveOwnedBy(notes(), "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnedBy(t *testing.T) {
	assert.True(t, OwnedBy(notes(), "bob"))
	assert.False(t, OwnedBy(notes(), "carol"))
}
