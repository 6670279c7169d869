package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Event представляет событие календаря
type Event struct {
	UID         string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool // дни плана экспортируются событиями на весь день
	Reminder    int  // минут до события
}

// GenerateICS генерирует содержимое .ics файла
func GenerateICS(events []Event) string {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//FitBot//Training Calendar//RU\r\n")
	sb.WriteString("CALSCALE:GREGORIAN\r\n")
	sb.WriteString("METHOD:PUBLISH\r\n")
	sb.WriteString("X-WR-CALNAME:Тренировки\r\n")

	for _, event := range events {
		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString(fmt.Sprintf("UID:%s\r\n", event.UID))
		sb.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(time.Now())))

		if event.AllDay {
			sb.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", event.StartTime.Format("20060102")))
			sb.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", event.StartTime.AddDate(0, 0, 1).Format("20060102")))
		} else {
			sb.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(event.StartTime)))
			sb.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(event.EndTime)))
		}

		sb.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(event.Summary)))
		if event.Description != "" {
			sb.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(event.Description)))
		}

		if event.Reminder > 0 {
			sb.WriteString("BEGIN:VALARM\r\n")
			sb.WriteString("ACTION:DISPLAY\r\n")
			sb.WriteString(fmt.Sprintf("TRIGGER:-PT%dM\r\n", event.Reminder))
			sb.WriteString("DESCRIPTION:Напоминание о тренировке\r\n")
			sb.WriteString("END:VALARM\r\n")
		}

		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")

	return sb.String()
}

// formatICSTime форматирует время в формат iCalendar
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS экранирует специальные символы для iCalendar
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// ParseDate парсит дату в формате ДД.ММ.ГГГГ
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("02.01.2006", strings.TrimSpace(dateStr))
}

// ParseTime парсит время в формате ЧЧ:ММ
func ParseTime(timeStr string) (hour, minute int, err error) {
	_, err = fmt.Sscanf(strings.TrimSpace(timeStr), "%d:%d", &hour, &minute)
	if err != nil {
		return 0, 0, fmt.Errorf("неверный формат времени, используйте ЧЧ:ММ")
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("некорректное время")
	}
	return hour, minute, nil
}
