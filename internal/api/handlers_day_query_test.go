package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/habits/internal/models"
	"gorm.io/gorm"
)

type dayResponse struct {
	PossibleHabits  []models.Habit `json:"possibleHabits"`
	CompletedHabits []string       `json:"completedHabits"`
}

func queryDay(t *testing.T, app *fiber.App, date string) dayResponse {
	t.Helper()

	response := doJSON(t, app, http.MethodGet, "/day?date="+date, nil)
	requireStatus(t, response, http.StatusOK)

	payload := dayResponse{}
	decodeJSON(t, response, &payload)
	return payload
}

func seedHabitCreatedAt(t *testing.T, database *gorm.DB, title string, createdAt time.Time, weekDays []int) models.Habit {
	t.Helper()

	habit := models.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: createdAt,
	}
	if err := database.Omit("WeekDays").Create(&habit).Error; err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	for _, weekDay := range weekDays {
		row := models.HabitWeekDay{ID: uuid.NewString(), HabitID: habit.ID, WeekDay: weekDay}
		if err := database.Create(&row).Error; err != nil {
			t.Fatalf("seed habit weekday: %v", err)
		}
	}
	return habit
}

func allWeekDays() []int {
	return []int{0, 1, 2, 3, 4, 5, 6}
}

func TestGetDayReturnsHabitsMatchingWeekday(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/habits", map[string]any{
		"title":    "Run",
		"weekDays": []int{1, 3, 5},
	})
	requireStatus(t, response, http.StatusCreated)

	monday := nextWeekday(time.Now().UTC(), time.Monday)
	payload := queryDay(t, app, monday.Format("2006-01-02"))

	if len(payload.PossibleHabits) != 1 || payload.PossibleHabits[0].Title != "Run" {
		t.Fatalf("expected Run to be possible on Monday, got %+v", payload.PossibleHabits)
	}
	if len(payload.CompletedHabits) != 0 {
		t.Fatalf("expected no completions, got %v", payload.CompletedHabits)
	}
}

func TestGetDayExcludesHabitsOffTheirWeekdays(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/habits", map[string]any{
		"title":    "Run",
		"weekDays": []int{1, 3, 5},
	})
	requireStatus(t, response, http.StatusCreated)

	tuesday := nextWeekday(time.Now().UTC(), time.Tuesday)
	payload := queryDay(t, app, tuesday.Format("2006-01-02"))

	if len(payload.PossibleHabits) != 0 {
		t.Fatalf("expected no possible habits on Tuesday, got %+v", payload.PossibleHabits)
	}
}

func TestGetDayExcludesHabitsCreatedAfterTheDate(t *testing.T) {
	app, database := newTestApp(t)

	queried := time.Now().UTC().AddDate(0, 0, 1)
	seedHabitCreatedAt(t, database, "Later", queried.AddDate(0, 0, 7), allWeekDays())

	payload := queryDay(t, app, queried.Format("2006-01-02"))
	if len(payload.PossibleHabits) != 0 {
		t.Fatalf("expected habit created after the date to be excluded, got %+v", payload.PossibleHabits)
	}
}

func TestGetDayWithoutDayRowReturnsEmptyCompletions(t *testing.T) {
	app, _ := newTestApp(t)

	future := time.Now().UTC().AddDate(0, 1, 0)
	payload := queryDay(t, app, future.Format("2006-01-02"))

	if payload.CompletedHabits == nil || len(payload.CompletedHabits) != 0 {
		t.Fatalf("expected empty completion list, got %v", payload.CompletedHabits)
	}
}

func TestGetDayListsEachHabitOnceDespiteDuplicateWeekdayRows(t *testing.T) {
	app, _ := newTestApp(t)

	weekDay := int(time.Now().UTC().Weekday())
	response := doJSON(t, app, http.MethodPost, "/habits", map[string]any{
		"title":    "Stretch",
		"weekDays": []int{weekDay, weekDay},
	})
	requireStatus(t, response, http.StatusCreated)

	payload := queryDay(t, app, time.Now().UTC().Format("2006-01-02"))
	if len(payload.PossibleHabits) != 1 {
		t.Fatalf("expected habit listed once, got %d entries", len(payload.PossibleHabits))
	}
}

func TestGetDayCoercesAlternateDateFormats(t *testing.T) {
	app, _ := newTestApp(t)

	future := time.Now().UTC().AddDate(0, 0, 14)
	for _, raw := range []string{
		future.Format("2006-01-02"),
		future.Format(time.RFC3339),
	} {
		payload := queryDay(t, app, raw)
		if payload.CompletedHabits == nil {
			t.Fatalf("expected a valid response for date %q", raw)
		}
	}
}

func TestGetDayRejectsUnparseableDate(t *testing.T) {
	app, _ := newTestApp(t)

	for _, raw := range []string{"", "not-a-date", "2026-13-40"} {
		response := doJSON(t, app, http.MethodGet, "/day?date="+raw, nil)
		requireStatus(t, response, http.StatusBadRequest)

		fields := readValidationFields(t, response)
		if _, exists := fields["date"]; !exists {
			t.Fatalf("expected date field detail for input %q, got %v", raw, fields)
		}
	}
}
