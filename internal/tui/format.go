package tui

import (
	"fmt"
	"time"
)

// countdown renders a duration as m:ss, switching to h:mm:ss past an hour.
func countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// window renders a session interval as "09:00–09:25".
func window(start, end time.Time) string {
	return start.Format("15:04") + "–" + end.Format("15:04")
}
