package model

import (
	"encoding/json"
	"fmt"

	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/weekset"
)

// resolveWeekSpec parses a wire WeekSpec into a weekset.Set. A nil spec
// resolves to the full week range (spec.md §4.1 default).
func resolveWeekSpec(raw *dto.WeekSpec, weeksTotal int) (*weekset.Set, error) {
	if raw == nil {
		return weekset.All(weeksTotal), nil
	}
	switch weekset.Mode(raw.Mode) {
	case weekset.ModeAll, "":
		return weekset.All(weeksTotal), nil
	case weekset.ModeList:
		var values []int
		if len(raw.Values) > 0 {
			if err := json.Unmarshal(raw.Values, &values); err != nil {
				return nil, fmt.Errorf("week-set list values: %w", err)
			}
		}
		return weekset.FromList(weeksTotal, values)
	case weekset.ModeRanges:
		var values []string
		if len(raw.Values) > 0 {
			if err := json.Unmarshal(raw.Values, &values); err != nil {
				return nil, fmt.Errorf("week-set ranges values: %w", err)
			}
		}
		return weekset.FromRanges(weeksTotal, values)
	default:
		return nil, fmt.Errorf("unknown week-set mode %q", raw.Mode)
	}
}
