package utils

import (
	"github.com/nyaruka/phonenumbers"
)

// FormatNationalNumber formats a phone number in US national
// (###) ###-#### format for display. Numbers that fail to parse are
// returned unchanged so rendering never breaks on odd platform data.
func FormatNationalNumber(pn string) string {
	parsed, err := phonenumbers.Parse(pn, "US")
	if err != nil {
		return pn
	}
	return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
}
