package models

// ScheduleSlot is one weekly availability window of a class.
// From and To are minute-of-day offsets; the window is [From, To).
type ScheduleSlot struct {
	ID      string `db:"id" json:"id"`
	ClassID string `db:"class_id" json:"class_id"`
	WeekDay int    `db:"week_day" json:"week_day"`
	From    int    `db:"from_minute" json:"from"`
	To      int    `db:"to_minute" json:"to"`
}

// Covers reports whether the slot is open on weekDay at minute.
func (s ScheduleSlot) Covers(weekDay, minute int) bool {
	return s.WeekDay == weekDay && s.From <= minute && minute < s.To
}

// Valid reports whether the slot window satisfies 0 <= From < To <= 1439.
func (s ScheduleSlot) Valid() bool {
	return s.From >= 0 && s.From < s.To && s.To <= 1439
}

// SearchFilter holds raw search parameters as received from the client.
type SearchFilter struct {
	Subject string
	WeekDay string
	Time    string
}
