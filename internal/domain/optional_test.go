package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchPayload struct {
	Name     Optional[string] `json:"name"`
	IsActive Optional[bool]   `json:"is_active"`
	Notes    Nullable[string] `json:"notes"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Run("absent key stays unset", func(t *testing.T) {
		var p patchPayload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Name.Set)
		assert.False(t, p.IsActive.Set)
		assert.False(t, p.Notes.Set)
	})

	t.Run("present value is set", func(t *testing.T) {
		var p patchPayload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","is_active":false}`), &p))

		name, ok := p.Name.Get()
		assert.True(t, ok)
		assert.Equal(t, "Jane", name)
		assert.True(t, p.IsActive.Set)
		assert.False(t, p.IsActive.Value)
	})

	t.Run("null is rejected", func(t *testing.T) {
		var p patchPayload
		err := json.Unmarshal([]byte(`{"is_active":null}`), &p)
		assert.ErrorIs(t, err, ErrNullValue)
	})

	t.Run("wrong type is rejected", func(t *testing.T) {
		var p patchPayload
		assert.Error(t, json.Unmarshal([]byte(`{"name":12}`), &p))
	})
}

func TestNullable_UnmarshalJSON(t *testing.T) {
	t.Run("explicit null clears", func(t *testing.T) {
		var p patchPayload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &p))

		assert.True(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("value is kept", func(t *testing.T) {
		var p patchPayload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"allergic to latex"}`), &p))

		require.True(t, p.Notes.Set)
		require.NotNil(t, p.Notes.Value)
		assert.Equal(t, "allergic to latex", *p.Notes.Value)
	})

	t.Run("absent and null are different", func(t *testing.T) {
		var absent, null patchPayload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &null))

		assert.NotEqual(t, absent.Notes, null.Notes)
	})
}

func TestValidationValue(t *testing.T) {
	assert.Equal(t, (*string)(nil), Optional[string]{}.ValidationValue())
	assert.Equal(t, "x", *Some("x").ValidationValue().(*string))

	assert.Equal(t, (*string)(nil), Nullable[string]{}.ValidationValue())
	assert.Equal(t, (*string)(nil), Null[string]().ValidationValue())
	assert.Equal(t, "a@b.c", *NullableOf("a@b.c").ValidationValue().(*string))
}

func TestOptional_MarshalJSON(t *testing.T) {
	date := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	out, err := json.Marshal(struct {
		Date  Optional[time.Time] `json:"date"`
		Unset Optional[int64]     `json:"unset"`
		Notes Nullable[string]    `json:"notes"`
	}{Date: Some(date), Notes: NullableOf("n")})
	require.NoError(t, err)

	assert.JSONEq(t, `{"date":"2025-03-01T09:30:00Z","unset":null,"notes":"n"}`, string(out))
}
