package utils

import "time"

// Korea time location (KST, +09:00).
var krLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

const dateLayout = "2006-01-02"

// ParseDateKR parses a YYYY-MM-DD slot date in Korea time.
func ParseDateKR(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, krLoc)
}

// FormatDateKR renders a calendar date as YYYY-MM-DD.
func FormatDateKR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(krLoc).Format(dateLayout)
}

// TodayKR is the current calendar date in Korea, used when a slot date is
// missing or unparseable.
func TodayKR() string {
	return time.Now().In(krLoc).Format(dateLayout)
}
