package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalThreeStates(t *testing.T) {
	type payload struct {
		Servings Optional[int]    `json:"servings"`
		ImageURL Optional[string] `json:"image_url"`
	}

	t.Run("absent field stays unrepresented", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Servings.Present())
		assert.False(t, p.Servings.IsNull())
		_, ok := p.Servings.Get()
		assert.False(t, ok)
	})

	t.Run("explicit null is a clear, not an absence", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"image_url": null}`), &p))

		assert.True(t, p.ImageURL.Present())
		assert.True(t, p.ImageURL.IsNull())
		_, ok := p.ImageURL.Get()
		assert.False(t, ok)
	})

	t.Run("set value is returned", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"servings": 4}`), &p))

		assert.True(t, p.Servings.Present())
		assert.False(t, p.Servings.IsNull())
		v, ok := p.Servings.Get()
		assert.True(t, ok)
		assert.Equal(t, 4, v)
	})

	t.Run("zero value is distinct from absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"servings": 0}`), &p))

		assert.True(t, p.Servings.Present())
		v, ok := p.Servings.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	})
}

func TestOptionalMarshal(t *testing.T) {
	data, err := json.Marshal(Some("pasta"))
	require.NoError(t, err)
	assert.JSONEq(t, `"pasta"`, string(data))

	data, err = json.Marshal(Null[string]())
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
}

func TestOptionalIsZero(t *testing.T) {
	var absent Optional[string]
	assert.True(t, absent.IsZero())
	assert.False(t, Some("x").IsZero())
	assert.False(t, Null[string]().IsZero())

	// omitzero relies on IsZero to drop absent fields entirely.
	doc := struct {
		Name Optional[string] `json:"name,omitzero"`
		Note Optional[string] `json:"note,omitzero"`
	}{Name: Some("pasta")}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pasta"}`, string(data))
}

func TestOptionalConstructors(t *testing.T) {
	o := Some(3)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	n := Null[int]()
	assert.True(t, n.Present())
	assert.True(t, n.IsNull())
}
