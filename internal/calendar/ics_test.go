package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateICSAllDay(t *testing.T) {
	events := []Event{
		{
			UID:       "uid-1",
			Summary:   "Тренировка: Фулбоди",
			StartTime: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			AllDay:    true,
		},
		{
			UID:       "uid-2",
			Summary:   "Отдых",
			StartTime: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
			AllDay:    true,
		},
	}

	got := GenerateICS(events)

	if !strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(got, "END:VCALENDAR\r\n") {
		t.Error("нет обёртки VCALENDAR")
	}
	if strings.Count(got, "BEGIN:VEVENT") != 2 {
		t.Errorf("ожидалось 2 события, содержимое:\n%s", got)
	}
	if !strings.Contains(got, "DTSTART;VALUE=DATE:20260202\r\n") {
		t.Error("нет начала события на весь день")
	}
	if !strings.Contains(got, "DTEND;VALUE=DATE:20260203\r\n") {
		t.Error("конец события на весь день должен быть следующим днём")
	}
}

func TestGenerateICSEscaping(t *testing.T) {
	got := GenerateICS([]Event{{
		UID:       "uid-1",
		Summary:   "Жим; лежа, стоя",
		StartTime: time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 2, 2, 11, 0, 0, 0, time.UTC),
	}})

	if !strings.Contains(got, `SUMMARY:Жим\; лежа\, стоя`) {
		t.Errorf("спецсимволы не экранированы:\n%s", got)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"10:00", 10, 0, false},
		{"23:59", 23, 59, false},
		{"7:05", 7, 5, false},
		{"24:00", 0, 0, true},
		{"10:60", 0, 0, true},
		{"вечером", 0, 0, true},
	}

	for _, tt := range tests {
		hour, minute, err := ParseTime(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTime(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (hour != tt.hour || minute != tt.minute) {
			t.Errorf("ParseTime(%q) = %d:%d", tt.input, hour, minute)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("02.01.2026")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Day() != 2 || got.Month() != 1 || got.Year() != 2026 {
		t.Errorf("ParseDate(02.01.2026) = %v", got)
	}

	if _, err := ParseDate("2026-01-02"); err == nil {
		t.Error("ожидалась ошибка для ISO-формата")
	}
}
