package entities

// BookingConfirmation carries the claimed slot details used for the
// confirmation message sent to the patient.
type BookingConfirmation struct {
	SlotID        string
	Practitioner  string
	DateFormatted string // "02/01/2006"
	Time          string // "15:04"
	PatientName   string
	PatientPhone  string
}
