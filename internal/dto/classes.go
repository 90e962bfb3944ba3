package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RegisterClassRequest is the payload for registering a tutor with a class.
type RegisterClassRequest struct {
	Name     string         `json:"name" validate:"required"`
	Avatar   string         `json:"avatar" validate:"required"`
	Whatsapp string         `json:"whatsapp" validate:"required"`
	Bio      string         `json:"bio" validate:"required"`
	Subject  string         `json:"subject" validate:"required"`
	Cost     *Number        `json:"cost" validate:"required,gte=0"`
	Schedule []ScheduleItem `json:"schedule" validate:"dive"`
}

// ScheduleItem is one weekly window as wall-clock strings.
type ScheduleItem struct {
	WeekDay *Integer `json:"week_day" validate:"required,min=0,max=6"`
	From    string   `json:"from" validate:"required"`
	To      string   `json:"to" validate:"required"`
}

// Integer accepts a JSON number or a numeric string, as sent by HTML selects.
type Integer int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Integer) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*i = Integer(v)
	return nil
}

// Number accepts a JSON number or a numeric string.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(bytes.Trim(data, `"`), &v); err != nil {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(v)
	return nil
}

// ClassCount is returned by the class counter endpoint.
type ClassCount struct {
	Total int `json:"total"`
}
