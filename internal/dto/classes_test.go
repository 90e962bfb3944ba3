package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClassRequestAcceptsNumericStrings(t *testing.T) {
	payload := `{"name":"Ana","avatar":"a","whatsapp":"w","bio":"b","subject":"Math","cost":"50.5",
		"schedule":[{"week_day":"1","from":"08:00","to":"10:00"},{"week_day":3,"from":"14:00","to":"16:00"}]}`

	var req RegisterClassRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.NotNil(t, req.Cost)
	assert.Equal(t, Number(50.5), *req.Cost)
	require.Len(t, req.Schedule, 2)
	assert.Equal(t, Integer(1), *req.Schedule[0].WeekDay)
	assert.Equal(t, Integer(3), *req.Schedule[1].WeekDay)
}

func TestIntegerRejectsGarbage(t *testing.T) {
	var i Integer
	assert.Error(t, json.Unmarshal([]byte(`"monday"`), &i))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &i))
}
