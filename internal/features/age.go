package features

import (
	"strings"
	"time"
)

// birthdateLayout accepts bureau birthdates with or without zero
// padding, e.g. "15/06/1990" and "5/6/1990".
const birthdateLayout = "2/1/2006"

// AgeAt returns the whole-year age for a day/month/year birthdate as
// of now. Empty, "-", and unparseable inputs return nil rather than
// 0: a zero age would read as a real value downstream, absence is the
// honest answer here.
func AgeAt(birthdate string, now time.Time) *int {
	switch strings.TrimSpace(birthdate) {
	case "", "-":
		return nil
	}
	born, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return nil
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return &age
}
