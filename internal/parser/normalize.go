package parser

import (
	"strconv"
	"strings"
	"time"
)

// Normalizer maps a regex submatch to a typed value. Returning ok=false
// rejects the match and lets the rule chain continue.
type Normalizer func(match []string) (any, bool)

// normalizeFinnishDate handles DD.MM.YYYY and DD.MM.YY. Two-digit years pivot
// at 50: <50 -> 20YY, otherwise 19YY. Invalid calendar dates are rejected.
func normalizeFinnishDate(match []string) (any, bool) {
	day, month, year := match[1], match[2], match[3]
	if len(year) == 2 {
		yy, err := strconv.Atoi(year)
		if err != nil {
			return nil, false
		}
		if yy < 50 {
			year = "20" + match[3]
		} else {
			year = "19" + match[3]
		}
	}
	return buildISODate(year, month, day)
}

// normalizeISODate handles YYYY-MM-DD with calendar validation.
func normalizeISODate(match []string) (any, bool) {
	return buildISODate(match[1], match[2], match[3])
}

func buildISODate(year, month, day string) (any, bool) {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (month 13 -> January);
	// reject anything that did not round-trip.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return nil, false
	}
	return t.Format("2006-01-02"), true
}

// normalizeAmount parses a European-format decimal: comma or space as the
// separator, normalized to a dot.
func normalizeAmount(match []string) (any, bool) {
	s := strings.NewReplacer(",", ".", " ", "").Replace(match[1])
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// normalizeString passes the first capture group through untouched.
func normalizeString(match []string) (any, bool) {
	return match[1], true
}

// companyName ignores the matched text and emits the canonical company name.
func companyName(name string) Normalizer {
	return func([]string) (any, bool) { return name, true }
}

// odometerNormalizer parses an odometer reading and applies the leading-2
// repair: readings above 1,000,000 that start with digit 2 carry an OCR
// artifact digit, which is stripped when the result lands inside the
// configured plausible range (minKM, maxKM). The repair is idempotent:
// an already-corrected in-range value is below the trigger threshold.
func odometerNormalizer(minKM, maxKM int) Normalizer {
	return func(match []string) (any, bool) {
		km, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, false
		}
		return repairOdometer(km, minKM, maxKM), true
	}
}

func repairOdometer(km, minKM, maxKM int) int {
	if km > 1000000 && strings.HasPrefix(strconv.Itoa(km), "2") {
		fixed, err := strconv.Atoi(strconv.Itoa(km)[1:])
		if err == nil && fixed > minKM && fixed < maxKM {
			return fixed
		}
	}
	return km
}
