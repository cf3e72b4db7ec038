package hypermedia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_WrapsRepresentationWithSelf(t *testing.T) {
	t.Parallel()

	rep := map[string]interface{}{"id": "u1", "email": "a@b.com"}
	env := NewItem(rep, "/gigwork/api/users/u1/")

	assert.Equal(t, "u1", env["id"])
	assert.Equal(t, "a@b.com", env["email"])

	controls, ok := env[ControlsKey].(map[string]Control)
	require.True(t, ok)
	assert.Equal(t, "/gigwork/api/users/u1/", controls[ControlSelf].Href)
}

func TestNewItem_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rep := map[string]interface{}{"id": "u1"}
	env := NewItem(rep, "/gigwork/api/users/u1/")
	env["extra"] = "x"

	assert.NotContains(t, rep, "extra")
	assert.NotContains(t, rep, ControlsKey)
}

func TestWritable_AddsEditAndDelete(t *testing.T) {
	t.Parallel()

	schema := map[string]interface{}{"type": "object"}
	env := NewItem(map[string]interface{}{"id": "p1"}, "/gigwork/api/postings/p1/").
		Writable("/gigwork/api/postings/p1/", schema)

	controls := env[ControlsKey].(map[string]Control)

	edit := controls[ControlEdit]
	assert.Equal(t, "PUT", edit.Method)
	assert.Equal(t, "/gigwork/api/postings/p1/", edit.Href)
	assert.Equal(t, schema, edit.Schema)

	del := controls[ControlDelete]
	assert.Equal(t, "DELETE", del.Method)
	assert.Nil(t, del.Schema)
}

func TestNewCollection_EmptyInputYieldsEmptyItems(t *testing.T) {
	t.Parallel()

	env := NewCollection(nil, "/gigwork/api/users/", map[string]interface{}{}, []string{"email"})

	items, ok := env["items"].([]Envelope)
	require.True(t, ok)
	assert.Empty(t, items)

	// "items" must serialize as [], not null
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestNewCollection_PreservesOrderAndSelfHrefs(t *testing.T) {
	t.Parallel()

	reps := []map[string]interface{}{
		{"id": "a", "title": "first"},
		{"id": "b", "title": "second"},
		{"id": "c", "title": "third"},
	}

	env := NewCollection(reps, "/gigwork/api/postings/", map[string]interface{}{}, []string{"title"})

	items := env["items"].([]Envelope)
	require.Len(t, items, len(reps))

	seen := make(map[string]bool)
	for i, item := range items {
		assert.Equal(t, reps[i]["id"], item["id"])

		controls := item[ControlsKey].(map[string]Control)
		href := controls[ControlSelf].Href
		assert.False(t, seen[href], "duplicate self href %s", href)
		seen[href] = true
	}
	assert.Equal(t, "/gigwork/api/postings/a/", items[0][ControlsKey].(map[string]Control)[ControlSelf].Href)
}

func TestNewCollection_ControlSet(t *testing.T) {
	t.Parallel()

	schema := map[string]interface{}{"type": "object"}
	fields := []string{"title", "status"}
	env := NewCollection(nil, "/gigwork/api/postings/", schema, fields)

	controls := env[ControlsKey].(map[string]Control)

	assert.Equal(t, "/gigwork/api/postings/", controls[ControlSelf].Href)

	create := controls[ControlCreate]
	assert.Equal(t, "POST", create.Method)
	assert.Equal(t, schema, create.Schema)

	filterCtrl := controls[ControlFilter]
	assert.True(t, filterCtrl.IsHrefTemplate)
	assert.Equal(t, "/gigwork/api/postings/{?title,status}", filterCtrl.Href)
	assert.Equal(t, fields, filterCtrl.Fields)
}

func TestNewCollection_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	reps := []map[string]interface{}{{"id": "a"}}
	NewCollection(reps, "/gigwork/api/gigs/", map[string]interface{}{}, nil)

	assert.Equal(t, map[string]interface{}{"id": "a"}, reps[0])
}

func TestRootDocument_ListsResources(t *testing.T) {
	t.Parallel()

	env := RootDocument("/gigwork/api")
	controls := env[ControlsKey].(map[string]Control)

	assert.Equal(t, "/gigwork/api/users/", controls["users"].Href)
	assert.Equal(t, "/gigwork/api/postings/", controls["postings"].Href)
	assert.Equal(t, "/gigwork/api/gigs/", controls["gigs"].Href)
	assert.Equal(t, "/gigwork/api/schema/", controls["schema"].Href)
}
