package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type numbersPayload struct {
	ID   FlexInt     `json:"id"`
	Prev OptionalInt `json:"prev"`
}

func TestFlexIntAcceptsNumbersAndStrings(t *testing.T) {
	var p numbersPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7}`), &p))
	assert.Equal(t, FlexInt(7), p.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": " 12 "}`), &p))
	assert.Equal(t, FlexInt(12), p.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": ""}`), &p))
	assert.Equal(t, FlexInt(0), p.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": "seven"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1.5}`), &p))
}

func TestOptionalIntStates(t *testing.T) {
	cases := []struct {
		body string
		want OptionalInt
	}{
		{`{}`, OptionalInt{}},
		{`{"prev": ""}`, OptionalInt{}},
		{`{"prev": null}`, OptionalInt{Set: true, Null: true}},
		{`{"prev": 3}`, OptionalInt{Set: true, Value: 3}},
		{`{"prev": "-2"}`, OptionalInt{Set: true, Value: -2}},
	}
	for _, tc := range cases {
		var p numbersPayload
		require.NoError(t, json.Unmarshal([]byte(tc.body), &p), tc.body)
		assert.Equal(t, tc.want, p.Prev, tc.body)
	}
}

func TestOptionalIntPtr(t *testing.T) {
	assert.Nil(t, OptionalInt{}.Ptr())
	assert.Nil(t, OptionalInt{Set: true, Null: true}.Ptr())
	v := OptionalInt{Set: true, Value: 4}.Ptr()
	require.NotNil(t, v)
	assert.Equal(t, 4, *v)
}
