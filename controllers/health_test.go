package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Aakash2700/sih-project/models"
)

func TestHealthReportRoundTrip(t *testing.T) {
	ctl, r := newTestController(t)

	createUser(t, ctl, "reporter", "pw", "admin", nil)
	token := loginToken(t, r, "reporter", "pw")

	symptoms := []string{"fever", "cough"}
	w := doJSON(t, r, http.MethodPost, "/health_reports", models.HealthReportRequest{
		ID:       "HR-10",
		Village:  "Imphal",
		Symptoms: symptoms,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/health_reports", nil, token)
	body := decodeBody(t, w)
	reports := body["health_reports"].([]interface{})
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	got := reports[0].(map[string]interface{})["symptoms"].([]interface{})
	if len(got) != 2 || got[0] != "fever" || got[1] != "cough" {
		t.Errorf("symptoms = %v, want [fever cough] in order", got)
	}
}

func TestHealthReportSymptomWithComma(t *testing.T) {
	// Symptoms are stored as a JSON array column, so entries containing
	// commas survive intact.
	ctl, r := newTestController(t)

	createUser(t, ctl, "reporter", "pw", "admin", nil)
	token := loginToken(t, r, "reporter", "pw")

	doJSON(t, r, http.MethodPost, "/health_reports", models.HealthReportRequest{
		ID:       "HR-11",
		Village:  "Imphal",
		Symptoms: []string{"nausea, severe", "fever"},
	}, token)

	var stored models.HealthReport
	if err := ctl.DB.First(&stored, "id = ?", "HR-11").Error; err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if len(stored.Symptoms) != 2 {
		t.Fatalf("symptoms = %v, want 2 entries", stored.Symptoms)
	}
	if stored.Symptoms[0] != "nausea, severe" {
		t.Errorf("symptom = %q, comma was not preserved", stored.Symptoms[0])
	}
}

func TestPublicHealthReportGeneratesID(t *testing.T) {
	ctl, r := newTestController(t)

	w := doJSON(t, r, http.MethodPost, "/public/health_report", models.PublicHealthReportRequest{
		Village:  "Aizawl",
		Symptoms: []string{"stomach pain"},
		Phone:    "9876543210",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	report := body["report"].(map[string]interface{})
	if report["id"] == "" || report["id"] == nil {
		t.Error("expected a generated report id")
	}

	// Phone is mandatory on the public endpoint.
	w = doJSON(t, r, http.MethodPost, "/public/health_report", models.PublicHealthReportRequest{
		Village:  "Aizawl",
		Symptoms: []string{"fever"},
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing phone status = %d, want 400", w.Code)
	}

	var count int64
	ctl.DB.Model(&models.HealthReport{}).Count(&count)
	if count != 1 {
		t.Errorf("report rows = %d, want 1", count)
	}
}

func TestHealthReportsVillageScopingAndDateFilter(t *testing.T) {
	ctl, r := newTestController(t)

	mk := func(id, village string, created time.Time) {
		report := models.HealthReport{
			ID: id, Village: village,
			Symptoms: []string{"fever"}, CreatedAt: created,
		}
		if err := ctl.DB.Create(&report).Error; err != nil {
			t.Fatalf("create report: %v", err)
		}
	}
	mk("HR-A", "Guwahati", time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	mk("HR-B", "Guwahati", time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC))
	mk("HR-C", "Shillong", time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC))

	createUser(t, ctl, "admin3", "pw", "admin", nil)
	createUser(t, ctl, "guwahati-user", "pw", "user", strPtr("Guwahati"))
	createUser(t, ctl, "null-user", "pw", "user", strPtr("null"))

	adminToken := loginToken(t, r, "admin3", "pw")
	villagerToken := loginToken(t, r, "guwahati-user", "pw")

	w := doJSON(t, r, http.MethodGet, "/health_reports", nil, adminToken)
	if got := len(decodeBody(t, w)["health_reports"].([]interface{})); got != 3 {
		t.Errorf("admin sees %d reports, want 3", got)
	}

	w = doJSON(t, r, http.MethodGet, "/health_reports", nil, villagerToken)
	if got := len(decodeBody(t, w)["health_reports"].([]interface{})); got != 2 {
		t.Errorf("villager sees %d reports, want 2", got)
	}

	// The literal village "null" counts as unset and is not scoped.
	w = doJSON(t, r, http.MethodGet, "/health_reports", nil, loginToken(t, r, "null-user", "pw"))
	if got := len(decodeBody(t, w)["health_reports"].([]interface{})); got != 3 {
		t.Errorf("null-village user sees %d reports, want 3", got)
	}

	// Bare dates expand to full-day bounds.
	w = doJSON(t, r, http.MethodGet, "/health_reports?start=2025-05-10&end=2025-05-15", nil, adminToken)
	if got := len(decodeBody(t, w)["health_reports"].([]interface{})); got != 2 {
		t.Errorf("date filtered: %d reports, want 2", got)
	}

	// Full ISO timestamps are accepted too.
	w = doJSON(t, r, http.MethodGet, "/health_reports?start=2025-05-15T09:00:00Z", nil, adminToken)
	if got := len(decodeBody(t, w)["health_reports"].([]interface{})); got != 2 {
		t.Errorf("timestamp filtered: %d reports, want 2", got)
	}
}
