package bot

import (
	"testing"
	"time"
)

func TestParseProgressionInput(t *testing.T) {
	tests := []struct {
		input     string
		wantName  string
		wantDelta string
		wantErr   bool
	}{
		{"Жим лежа | +2.5 кг", "Жим лежа", "+2.5 кг", false},
		{"Приседания|+1 повт", "Приседания", "+1 повт", false},
		{"  Тяга  |  -5 кг  ", "Тяга", "-5 кг", false},
		{"без разделителя", "", "", true},
		{"| +2 повт", "", "", true},
		{"Жим лежа |", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		name, delta, err := parseProgressionInput(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseProgressionInput(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if name != tt.wantName || delta != tt.wantDelta {
			t.Errorf("parseProgressionInput(%q) = (%q, %q), ожидалось (%q, %q)",
				tt.input, name, delta, tt.wantName, tt.wantDelta)
		}
	}
}

func TestParseAutoprogInput(t *testing.T) {
	tests := []struct {
		input        string
		wantKey      string
		wantName     string
		wantDelta    string
		wantInterval int
		wantErr      bool
	}{
		{"fullbody | Жим лежа | +1 повт | 7", "fullbody", "Жим лежа", "+1 повт", 7, false},
		{"fullbody | Жим лежа | +2.5 кг", "fullbody", "Жим лежа", "+2.5 кг", 7, false},
		{"upper|Тяга|+1 повт|14", "upper", "Тяга", "+1 повт", 14, false},
		{"fullbody | Жим лежа", "", "", "", 0, true},
		{"fullbody | Жим лежа | +1 повт | ноль", "", "", "", 0, true},
		{"fullbody | Жим лежа | +1 повт | 0", "", "", "", 0, true},
		{"", "", "", "", 0, true},
	}

	for _, tt := range tests {
		key, name, delta, interval, err := parseAutoprogInput(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAutoprogInput(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if key != tt.wantKey || name != tt.wantName || delta != tt.wantDelta || interval != tt.wantInterval {
			t.Errorf("parseAutoprogInput(%q) = (%q, %q, %q, %d)", tt.input, key, name, delta, interval)
		}
	}
}

func TestParseProgressLine(t *testing.T) {
	tests := []struct {
		input   string
		want    [5]float64
		wantErr bool
	}{
		{"92.5, 84, 89, 36, 102", [5]float64{92.5, 84, 89, 36, 102}, false},
		{"92.5", [5]float64{92.5, 0, 0, 0, 0}, false},
		{"92.5, -, -, 36", [5]float64{92.5, 0, 0, 36, 0}, false},
		{"92.5, 84, 89, 36, 102, 55", [5]float64{}, true},
		{"вес, 84", [5]float64{}, true},
		{"-1, 84", [5]float64{}, true},
	}

	for _, tt := range tests {
		got, err := parseProgressLine(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseProgressLine(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseProgressLine(%q) = %v, ожидалось %v", tt.input, got, tt.want)
		}
	}
}

func TestParseStartDate(t *testing.T) {
	today := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	got, err := parseStartDate("today", today)
	if err != nil || !got.Equal(today) {
		t.Errorf("parseStartDate(today) = %v, %v", got, err)
	}

	got, err = parseStartDate("2026-03-01", today)
	if err != nil {
		t.Fatalf("parseStartDate(2026-03-01) error = %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 1 {
		t.Errorf("parseStartDate(2026-03-01) = %v", got)
	}

	got, err = parseStartDate("01.03.2026", today)
	if err != nil {
		t.Fatalf("parseStartDate(01.03.2026) error = %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 1 {
		t.Errorf("parseStartDate(01.03.2026) = %v", got)
	}

	if _, err = parseStartDate("завтра", today); err == nil {
		t.Error("ожидалась ошибка для нераспознанной даты")
	}
}
