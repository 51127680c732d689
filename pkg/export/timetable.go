package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eduplan/timetable-engine/internal/dto"
)

// TimetableDataset flattens a solution document's assignments into the
// generic tabular Dataset the PDF/CSV renderers consume.
func TimetableDataset(doc *dto.SolutionDocument) Dataset {
	headers := []string{"event_id", "session_id", "module_id", "teacher_id", "groups", "day", "start", "end", "room_id", "weeks"}
	rows := make([]map[string]string, 0, len(doc.Assignments))
	for _, a := range doc.Assignments {
		weeks := make([]string, len(a.Weeks))
		for i, w := range a.Weeks {
			weeks[i] = strconv.Itoa(w)
		}
		rows = append(rows, map[string]string{
			"event_id":   a.EventID,
			"session_id": a.SessionID,
			"module_id":  a.ModuleID,
			"teacher_id": a.TeacherID,
			"groups":     strings.Join(a.GroupIDs, ","),
			"day":        a.Day,
			"start":      a.Start,
			"end":        a.End,
			"room_id":    a.RoomID,
			"weeks":      strings.Join(weeks, ","),
		})
	}
	return Dataset{Headers: headers, Rows: rows}
}

// TimetableTitle builds the PDF title from a solution's run metadata.
func TimetableTitle(doc *dto.SolutionDocument) string {
	return fmt.Sprintf("%s schedule (%s, %d/%d events)", doc.Meta.WeekName, doc.Meta.Strategy, doc.Meta.EventsScheduled, doc.Meta.EventsTotal)
}
