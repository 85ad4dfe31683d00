package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/terraincognita07/habits/internal/models"
	"github.com/terraincognita07/habits/internal/services"
)

type summaryResponse struct {
	Summary []services.SummaryEntry `json:"summary"`
}

func TestSummaryCountsCompletedAndPossibleHabits(t *testing.T) {
	app, database := newTestApp(t)

	weekDay := int(time.Now().UTC().Weekday())
	response := doJSON(t, app, http.MethodPost, "/habits", map[string]any{
		"title":    "Run",
		"weekDays": []int{weekDay},
	})
	requireStatus(t, response, http.StatusCreated)

	habit := models.Habit{}
	if err := database.First(&habit).Error; err != nil {
		t.Fatalf("load habit: %v", err)
	}

	response = doJSON(t, app, http.MethodPatch, "/habits/"+habit.ID+"/toggle", nil)
	requireStatus(t, response, http.StatusNoContent)

	response = doJSON(t, app, http.MethodGet, "/summary", nil)
	requireStatus(t, response, http.StatusOK)

	payload := summaryResponse{}
	decodeJSON(t, response, &payload)

	if len(payload.Summary) != 1 {
		t.Fatalf("expected one summary entry, got %d", len(payload.Summary))
	}
	entry := payload.Summary[0]
	if entry.Completed != 1 {
		t.Fatalf("expected completed=1, got %d", entry.Completed)
	}
	if entry.Amount != 1 {
		t.Fatalf("expected amount=1, got %d", entry.Amount)
	}

	expectedDate := services.DateAtLocation(time.Now(), time.UTC)
	if !entry.Date.Equal(expectedDate) {
		t.Fatalf("expected date %s, got %s", expectedDate, entry.Date)
	}
}

func TestSummaryReflectsUncompletion(t *testing.T) {
	app, database := newTestApp(t)

	weekDay := int(time.Now().UTC().Weekday())
	response := doJSON(t, app, http.MethodPost, "/habits", map[string]any{
		"title":    "Run",
		"weekDays": []int{weekDay},
	})
	requireStatus(t, response, http.StatusCreated)

	habit := models.Habit{}
	if err := database.First(&habit).Error; err != nil {
		t.Fatalf("load habit: %v", err)
	}

	for i := 0; i < 2; i++ {
		response = doJSON(t, app, http.MethodPatch, "/habits/"+habit.ID+"/toggle", nil)
		requireStatus(t, response, http.StatusNoContent)
	}

	response = doJSON(t, app, http.MethodGet, "/summary", nil)
	requireStatus(t, response, http.StatusOK)

	payload := summaryResponse{}
	decodeJSON(t, response, &payload)

	if len(payload.Summary) != 1 {
		t.Fatalf("expected one summary entry, got %d", len(payload.Summary))
	}
	if payload.Summary[0].Completed != 0 {
		t.Fatalf("expected completed=0 after double toggle, got %d", payload.Summary[0].Completed)
	}
	if payload.Summary[0].Amount != 1 {
		t.Fatalf("expected amount=1, got %d", payload.Summary[0].Amount)
	}
}

func TestSummaryExcludesHabitsCreatedAfterTheDay(t *testing.T) {
	app, database := newTestApp(t)

	today := services.DateAtLocation(time.Now(), time.UTC)
	current := seedHabitCreatedAt(t, database, "Now", today, allWeekDays())

	response := doJSON(t, app, http.MethodPatch, "/habits/"+current.ID+"/toggle", nil)
	requireStatus(t, response, http.StatusNoContent)

	futureCreated := today.AddDate(0, 0, 3)
	seedHabitCreatedAt(t, database, "Future", futureCreated, allWeekDays())

	response = doJSON(t, app, http.MethodGet, "/summary", nil)
	requireStatus(t, response, http.StatusOK)

	payload := summaryResponse{}
	decodeJSON(t, response, &payload)

	if len(payload.Summary) != 1 {
		t.Fatalf("expected one summary entry, got %d", len(payload.Summary))
	}
	if payload.Summary[0].Amount != 1 {
		t.Fatalf("expected future habit excluded from amount, got %d", payload.Summary[0].Amount)
	}
	if payload.Summary[0].Completed != 1 {
		t.Fatalf("expected completed=1, got %d", payload.Summary[0].Completed)
	}
}

func TestSummaryEmptyWhenNoDaysRecorded(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/summary", nil)
	requireStatus(t, response, http.StatusOK)

	payload := summaryResponse{}
	decodeJSON(t, response, &payload)

	if payload.Summary == nil || len(payload.Summary) != 0 {
		t.Fatalf("expected empty summary list, got %v", payload.Summary)
	}
}
