package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSlotCoversHalfOpen(t *testing.T) {
	slot := ScheduleSlot{WeekDay: 1, From: 480, To: 600}

	assert.True(t, slot.Covers(1, 480))
	assert.True(t, slot.Covers(1, 599))
	assert.False(t, slot.Covers(1, 600))
	assert.False(t, slot.Covers(1, 601))
	assert.False(t, slot.Covers(1, 479))
	assert.False(t, slot.Covers(2, 500))
	assert.False(t, slot.Covers(8, 500))
}

func TestScheduleSlotValid(t *testing.T) {
	assert.True(t, ScheduleSlot{From: 0, To: 1439}.Valid())
	assert.False(t, ScheduleSlot{From: 600, To: 600}.Valid())
	assert.False(t, ScheduleSlot{From: 600, To: 480}.Valid())
	assert.False(t, ScheduleSlot{From: -1, To: 10}.Valid())
	assert.False(t, ScheduleSlot{From: 0, To: 1440}.Valid())
}
