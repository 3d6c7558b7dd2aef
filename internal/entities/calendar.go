package entities

// CalendarEvent is the shape the web calendar widget consumes.
// Start is clinic-local ISO-8601 without zone ("2006-01-02T15:04").
type CalendarEvent struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Start        string `json:"start"`
	Practitioner string `json:"practitioner"`
}
