package timespan

// SecondsReader reports a duration as a whole number of seconds.
type SecondsReader interface {
	Seconds() uint64
}

// MinutesReader reports a duration as a whole number of full minutes.
type MinutesReader interface {
	Minutes() uint64
}

// HoursReader reports a duration as a whole number of full hours.
type HoursReader interface {
	Hours() uint64
}

// DaysReader reports a duration as a whole number of full days.
type DaysReader interface {
	Days() uint64
}

// Reader combines the four truncating unit views. Any type exposing them is
// interchangeable with Duration for read purposes.
type Reader interface {
	SecondsReader
	MinutesReader
	HoursReader
	DaysReader
}

var _ Reader = Duration{}
