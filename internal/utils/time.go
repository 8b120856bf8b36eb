package util

import "time"

// The practice operates on US Eastern time; analytics day boundaries follow
// the front-desk clock rather than UTC.
var clinicLocation *time.Location

func init() {
	var err error
	clinicLocation, err = time.LoadLocation("America/New_York")
	if err != nil {
		clinicLocation = time.FixedZone("EST", -5*60*60)
	}
}

func ClinicLocation() *time.Location {
	return clinicLocation
}

// StartOfDay truncates t to midnight in the clinic's timezone.
func StartOfDay(t time.Time) time.Time {
	local := t.In(clinicLocation)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, clinicLocation)
}
