package snapshot

import (
	"fmt"
	"time"
)

func RoutesKey(prefix string) string {
	return prefix + "routes.json"
}

func ScheduleKey(prefix, departure, arrival string, year int, month time.Month) string {
	return fmt.Sprintf("%sschedules/%s/%s/%d/%02d.json", prefix, departure, arrival, year, int(month))
}
