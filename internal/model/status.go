package model

// ReadingStatus is the lifecycle stage of a book in the library.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "WANT_TO_READ"
	StatusReading    ReadingStatus = "READING"
	StatusCompleted  ReadingStatus = "COMPLETED"
	StatusOnHold     ReadingStatus = "ON_HOLD"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}
