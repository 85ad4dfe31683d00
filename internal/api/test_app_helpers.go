package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habits/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "habits-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("decode response body %q: %v", payload, err)
	}
}

func requireStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, response.StatusCode)
	}
}

func readValidationFields(t *testing.T, response *http.Response) map[string]string {
	t.Helper()

	payload := struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}{}
	decodeJSON(t, response, &payload)

	if payload.Error != "validation failed" {
		t.Fatalf("expected validation error payload, got %q", payload.Error)
	}
	return payload.Fields
}

// nextWeekday returns the first day at or after the reference date that
// falls on the wanted weekday. Tests use dates in the future so habit
// creation timestamps never disqualify them.
func nextWeekday(reference time.Time, weekDay time.Weekday) time.Time {
	date := reference
	for date.Weekday() != weekDay {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
