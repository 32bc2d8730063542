package lending

import "time"

// 貸出期間（日）は 1 / 7 / 30 のみ
var AllowedDurations = []int{1, 7, 30}

func ValidDuration(days int) bool {
	for _, d := range AllowedDurations {
		if d == days {
			return true
		}
	}
	return false
}

// DueDate: loc での now の日付に days 日を足した日の 0:00。時刻には依存しない
func DueDate(now time.Time, days int, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, loc)
}
