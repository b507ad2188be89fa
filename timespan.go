// Package timespan parses human-readable duration strings like "10s",
// "8h5m10s" or "120m" into a whole-seconds duration value.
//
// The accepted grammar is a sequence of tokens, each a run of decimal digits
// immediately followed by a single unit letter: s (seconds), m (minutes),
// h (hours) or d (days), case-insensitive. Tokens may appear anywhere in the
// input and in any order; everything between them is ignored. Contributions
// are summed without normalization, so "3m60s" is 240 seconds.
package timespan

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned by Parse when the input contains no
// duration tokens, or when a value does not fit in 64 bits.
var ErrInvalidDuration = errors.New("timespan: invalid duration")

// ErrOutOfRange is returned by Std when the seconds count cannot be
// represented as a time.Duration.
var ErrOutOfRange = errors.New("timespan: duration exceeds time.Duration range")

// tokenPattern matches one duration token: a digit run immediately followed
// by a unit letter. "10 s" has no match because of the space.
var tokenPattern = regexp.MustCompile(`(?i)([0-9]+)([dhms])`)

// Seconds per unit.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// maxStdSeconds is the largest seconds count a time.Duration can hold.
const maxStdSeconds = uint64(math.MaxInt64 / int64(time.Second))

// Duration is a non-negative span of time stored as a whole number of
// seconds. The zero value is a zero-length duration. Values are immutable
// once constructed and safe for concurrent use.
type Duration struct {
	seconds uint64
}

// FromSeconds wraps a literal seconds count. No unit inference is applied;
// narrower unsigned widths widen with an ordinary conversion.
func FromSeconds(n uint64) Duration {
	return Duration{seconds: n}
}

// Parse converts a duration string into a Duration by scanning the input for
// tokens and summing their contributions. It returns ErrInvalidDuration when
// no token is found or a value overflows the 64-bit seconds counter.
func Parse(s string) (Duration, error) {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return Duration{}, ErrInvalidDuration
	}

	var total uint64
	for _, match := range matches {
		quantity, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return Duration{}, ErrInvalidDuration
		}
		multiplier := unitSeconds(match[2])
		if quantity > math.MaxUint64/multiplier {
			return Duration{}, ErrInvalidDuration
		}
		seconds := quantity * multiplier
		if total > math.MaxUint64-seconds {
			return Duration{}, ErrInvalidDuration
		}
		total += seconds
	}

	return Duration{seconds: total}, nil
}

// unitSeconds maps a unit letter to its seconds multiplier. The letter has
// already been validated by tokenPattern.
func unitSeconds(unit string) uint64 {
	switch strings.ToLower(unit) {
	case "d":
		return secondsPerDay
	case "h":
		return secondsPerHour
	case "m":
		return secondsPerMinute
	default:
		return 1
	}
}

// Seconds returns the stored total seconds exactly.
func (d Duration) Seconds() uint64 {
	return d.seconds
}

// Minutes returns the number of full minutes, discarding the remainder.
func (d Duration) Minutes() uint64 {
	return d.seconds / secondsPerMinute
}

// Hours returns the number of full hours, discarding the remainder.
func (d Duration) Hours() uint64 {
	return d.seconds / secondsPerHour
}

// Days returns the number of full days, discarding the remainder.
func (d Duration) Days() uint64 {
	return d.seconds / secondsPerDay
}

// Std converts the duration to a time.Duration. Seconds counts beyond what
// time.Duration can represent (about 292 years) return ErrOutOfRange.
func (d Duration) Std() (time.Duration, error) {
	if d.seconds > maxStdSeconds {
		return 0, ErrOutOfRange
	}
	return time.Duration(d.seconds) * time.Second, nil
}

// String renders the duration in the same grammar Parse accepts, largest
// unit first, e.g. "1d2h3m4s". A zero duration renders as "0s".
func (d Duration) String() string {
	if d.seconds == 0 {
		return "0s"
	}

	var b strings.Builder
	rest := d.seconds
	if days := rest / secondsPerDay; days > 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('d')
		rest %= secondsPerDay
	}
	if hours := rest / secondsPerHour; hours > 0 {
		b.WriteString(strconv.FormatUint(hours, 10))
		b.WriteByte('h')
		rest %= secondsPerHour
	}
	if minutes := rest / secondsPerMinute; minutes > 0 {
		b.WriteString(strconv.FormatUint(minutes, 10))
		b.WriteByte('m')
		rest %= secondsPerMinute
	}
	if rest > 0 {
		b.WriteString(strconv.FormatUint(rest, 10))
		b.WriteByte('s')
	}
	return b.String()
}

// Set parses a flag argument into the receiver. Together with String and
// Type it lets a *Duration bind directly to a cobra/pflag flag.
func (d *Duration) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Type describes the flag value in help output.
func (d *Duration) Type() string {
	return "duration"
}
