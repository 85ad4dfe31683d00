package api

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

type createHabitPayload struct {
	Title    any `json:"title"`
	WeekDays any `json:"weekDays"`
}

// parseCreateHabitInput checks the habit creation body field by field.
// A non-empty fields map means the input is rejected; the returned values
// are only meaningful when the map is empty.
func parseCreateHabitInput(body []byte) (string, []int, map[string]string) {
	fields := make(map[string]string)

	payload := createHabitPayload{}
	if err := json.Unmarshal(body, &payload); err != nil {
		fields["body"] = "must be a json object"
		return "", nil, fields
	}

	title := ""
	switch value := payload.Title.(type) {
	case nil:
		fields["title"] = "is required"
	case string:
		if strings.TrimSpace(value) == "" {
			fields["title"] = "must not be empty"
		}
		title = value
	default:
		fields["title"] = "must be a string"
	}

	weekDays := make([]int, 0)
	switch value := payload.WeekDays.(type) {
	case nil:
		fields["weekDays"] = "is required"
	case []any:
		for index, rawElement := range value {
			weekDay, ok := weekDayValue(rawElement)
			if !ok {
				fields["weekDays."+strconv.Itoa(index)] = "must be an integer between 0 and 6"
				continue
			}
			weekDays = append(weekDays, weekDay)
		}
	default:
		fields["weekDays"] = "must be an array"
	}

	return title, weekDays, fields
}

func weekDayValue(raw any) (int, bool) {
	number, ok := raw.(float64)
	if !ok || number != math.Trunc(number) {
		return 0, false
	}
	weekDay := int(number)
	if weekDay < 0 || weekDay > 6 {
		return 0, false
	}
	return weekDay, true
}

// coerceDateParam accepts the formats a frontend is likely to send for a
// calendar date: date-only, RFC 3339, or unix milliseconds.
func coerceDateParam(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, location); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(location), nil
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).In(location), nil
	}
	return time.Time{}, errors.New("unrecognized date format")
}
