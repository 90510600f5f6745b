package planetary

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

// JulianDate returns the Julian date of the given civil time.
func JulianDate(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}

// SimSeconds returns the simulation-time offset in seconds of dt relative
// to the given epoch, computed through Julian dates so leap-day arithmetic
// matches ephemeris conventions.
func SimSeconds(epoch, dt time.Time) float64 {
	return (julian.TimeToJD(dt.UTC()) - julian.TimeToJD(epoch.UTC())) * 86400
}
