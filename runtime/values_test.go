// SPDX-License-Identifier: MIT

package runtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	type entity struct {
		CreatedAt Date  `json:"created_at"`
		DueDate   *Date `json:"due_date"`
	}

	var e entity
	require.NoError(t, json.Unmarshal([]byte(`{"created_at": "2018-01-01", "due_date": null}`), &e))
	assert.Equal(t, NewDate(2018, time.January, 1), e.CreatedAt)
	assert.Nil(t, e.DueDate)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"created_at": "2018-01-01", "due_date": null}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"created_at": "2018-01-01T00:00:00Z"}`), &e))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))
	assert.PanicsWithError(t, ErrNilValue.Error(), func() { Must(0, ErrNilValue) })
}
