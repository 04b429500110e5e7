package clock

// MinutesPerDay is the number of distinct minute-of-day values.
const MinutesPerDay = 24 * 60

// Config holds the wake-up schedule.  All times are minutes after midnight.
//
// The schedule assumes AlmostWakeTime < WakeTime < SleepTime; nothing checks that.
type Config struct {
	// TimeMultiplier speeds up the clock for testing: with 60, one real minute is one clock
	// hour.
	TimeMultiplier int

	AlmostWakeTime int // Clocks from here until WakeTime.
	WakeTime       int // Happy face from here until SleepTime.
	SleepTime      int // Asleep after this, through midnight, until AlmostWakeTime.

	// The status is shown without a button press strictly between ShowStart and ShowEnd.
	ShowStart int
	ShowEnd   int
}

// DefaultConfig is the schedule the clock ships with.
var DefaultConfig = Config{
	TimeMultiplier: 1,
	AlmostWakeTime: 6*60 + 45,
	WakeTime:       7*60 + 15,
	SleepTime:      21*60 + 30,
	ShowStart:      6 * 60,
	ShowEnd:        8 * 60,
}
