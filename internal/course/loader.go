// Package course loads and validates the schedule for one course run.
package course

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// sessionsBlockPattern locates the sessions JSON array embedded in the
// legacy text format.
var sessionsBlockPattern = regexp.MustCompile(`(?s)\[\s*{.*}\s*\]`)

type rawSession struct {
	ID           string `json:"id"`
	Lecture      string `json:"lecture"`
	Session      string `json:"session"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TimeRange    string `json:"time"`
	ModeLocation string `json:"mode_location"`
	Venue        string `json:"venue"`
	GoogleMap    string `json:"google_map"`
	ZoomLink     string `json:"zoom_link"`
	MeetingID    string `json:"meeting_id"`
	Passcode     string `json:"passcode"`
}

type rawCourse struct {
	Title              string       `json:"title"`
	Sessions           []rawSession `json:"sessions"`
	AttendanceQRURL    string       `json:"attendance_qr_url"`
	AttendanceCheckURL string       `json:"attendance_check_url"`
	CarparkInfoURL     string       `json:"carpark_info_url"`
	MaterialsURL       string       `json:"materials_url"`
}

// Load reads the course data file at path and builds the schedule store.
// JSON files carry the full structure; anything else is treated as the
// legacy text format (title line, link URLs after keyword lines, and an
// embedded sessions JSON block).
func Load(path string, loc *time.Location) (*entity.Course, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}

	text := string(content)
	if filepath.Ext(path) == ".json" || strings.HasPrefix(strings.TrimSpace(text), "{") {
		return LoadJSON(text, loc)
	}
	return LoadLegacy(text, loc)
}

// LoadJSON builds the schedule store from a JSON course document.
func LoadJSON(content string, loc *time.Location) (*entity.Course, error) {
	var raw rawCourse
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, domain.NewDataError("", "malformed course JSON: %v", err)
	}
	if len(raw.Sessions) == 0 {
		return nil, domain.NewDataError("", "course data must include a non-empty sessions list")
	}
	if raw.Title == "" {
		raw.Title = "Course"
	}
	return build(raw, loc)
}

// LoadLegacy builds the schedule store from the legacy plain-text
// format: the first non-empty line is the title, session data sits in a
// JSON array somewhere in the body, and standing links follow their
// keyword lines.
func LoadLegacy(content string, loc *time.Location) (*entity.Course, error) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	raw := rawCourse{Title: "Course"}
	if len(lines) > 0 {
		raw.Title = lines[0]
	}

	block := sessionsBlockPattern.FindString(content)
	if block == "" {
		return nil, domain.NewDataError("", "unable to locate sessions JSON block in course file")
	}
	if err := json.Unmarshal([]byte(block), &raw.Sessions); err != nil {
		return nil, domain.NewDataError("", "malformed sessions block: %v", err)
	}

	raw.AttendanceQRURL = findURLAfterKeyword(lines, "QR code for marking attendance")
	raw.AttendanceCheckURL = findURLAfterKeyword(lines, "checking attendance")
	raw.CarparkInfoURL = findURLAfterKeyword(lines, "Carpark Charges")
	raw.MaterialsURL = findURLAfterKeyword(lines, "Course Materials")

	return build(raw, loc)
}

// findURLAfterKeyword returns the URL on the line following the first
// line containing keyword, if any.
func findURLAfterKeyword(lines []string, keyword string) string {
	keyword = strings.ToLower(keyword)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), keyword) && i+1 < len(lines) {
			if candidate := lines[i+1]; strings.HasPrefix(candidate, "http") {
				return candidate
			}
		}
	}
	return ""
}
