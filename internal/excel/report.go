package excel

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fitbot/internal/models"
	"fitbot/internal/plan"

	"github.com/xuri/excelize/v2"
)

// Названия листов отчёта
const (
	SheetProgress = "Замеры"
	SheetPlan     = "План"
)

// BuildReport собирает xlsx-отчёт: лист замеров и лист плана цикла.
// Возвращает путь к временному файлу, удаление на вызывающем
func BuildReport(snap *plan.Snapshot, entries []models.ProgressEntry) (string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Ошибка закрытия файла: %v", err)
		}
	}()

	f.SetSheetName("Sheet1", SheetProgress)
	f.NewSheet(SheetPlan)

	if err := fillProgressSheet(f, entries); err != nil {
		return "", fmt.Errorf("ошибка листа замеров: %w", err)
	}
	if err := fillPlanSheet(f, snap); err != nil {
		return "", fmt.Errorf("ошибка листа плана: %w", err)
	}

	f.SetActiveSheet(0)

	path := filepath.Join(os.TempDir(),
		fmt.Sprintf("fitbot-report-%s.xlsx", time.Now().Format("20060102-150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("ошибка сохранения файла: %w", err)
	}
	return path, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

func fillProgressSheet(f *excelize.File, entries []models.ProgressEntry) error {
	sheet := SheetProgress

	headers := []string{"Дата", "Вес", "Талия", "Живот", "Бицепс", "Грудь", "Комментарий"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "G1", headerStyle(f))
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "G", "G", 30)

	for row, e := range entries {
		values := []interface{}{
			e.Date.Format("02.01.2006"),
			nonZero(e.Weight), nonZero(e.Waist), nonZero(e.Belly),
			nonZero(e.Biceps), nonZero(e.Chest),
			e.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if v != nil {
				f.SetCellValue(sheet, cell, v)
			}
		}
	}
	return nil
}

func fillPlanSheet(f *excelize.File, snap *plan.Snapshot) error {
	sheet := SheetPlan

	headers := []string{"День цикла", "Тренировка", "Уровень", "Упражнение", "Подходы", "Повторения", "Вес"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "G1", headerStyle(f))
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "D", "D", 30)

	row := 2
	for pos, key := range snap.Def.CycleOrder {
		if key == models.RestKey {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), pos+1)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Отдых")
			row++
			continue
		}

		content, ok := snap.DayContent(key)
		if !ok {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), pos+1)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), key+" (нет в плане)")
			row++
			continue
		}

		for _, level := range models.Levels {
			for _, ex := range content.Levels[level] {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), pos+1)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), content.Title)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), level.NameRu())
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ex.Name)
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), ex.Sets)
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), ex.Reps)
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), ex.Weight)
				row++
			}
		}
	}
	return nil
}

func nonZero(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
