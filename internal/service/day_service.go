package service

import (
	"fmt"
	"log"
	"time"

	"fitbot/internal/models"
	"fitbot/internal/plan"
	"fitbot/internal/progression"
	"fitbot/internal/repository"
)

// cycleEpoch дата позиции 0 по умолчанию, пока пользователь
// не задал свою через /startdate
var cycleEpoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// DayService собирает план дня и ведёт календарь.
// Используется и ботом, и HTTP API
type DayService struct {
	repo      *repository.Repository
	store     *plan.Store
	assembler *plan.Assembler
}

// NewDayService создаёт сервис дня
func NewDayService(repo *repository.Repository, store *plan.Store) *DayService {
	return &DayService{
		repo:      repo,
		store:     store,
		assembler: plan.NewAssembler(store),
	}
}

// DayView план дня вместе с состоянием календаря
type DayView struct {
	Plan   *models.DayPlanView
	Level  models.Level
	Status models.DayStatus

	// DefaultStart позиции считаются от эпохи: пользователь
	// ещё не задавал дату начала цикла
	DefaultStart bool
}

// Materialize собирает план на дату и фиксирует день в календаре.
// Прошедшие дни без отметки помечаются пропущенными
func (s *DayService) Materialize(userID int, date time.Time) (*DayView, error) {
	settings, err := s.repo.User.GetSettings(userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить настройки: %w", err)
	}
	startDate := cycleEpoch
	if settings.StartDate != nil {
		startDate = *settings.StartDate
	}

	view, err := s.assembler.Assemble(date, startDate, s.repo.Override.ForUser(userID))
	if err != nil {
		return nil, err
	}

	if n, err := s.repo.Calendar.MarkSkippedBefore(userID, date); err != nil {
		log.Printf("Не удалось пометить пропущенные дни пользователя %d: %v", userID, err)
	} else if n > 0 {
		log.Printf("Пользователь %d: %d дней помечено пропущенными", userID, n)
	}

	day := models.CalendarDay{
		UserID:  userID,
		Date:    date,
		DayType: view.DayType,
		Status:  models.DayStatusPlanned,
		Level:   settings.Level,
		Macros:  view.Macros,
	}
	if view.Workout != nil {
		day.WorkoutKey = view.Workout.Key
	}
	if err := s.repo.Calendar.Upsert(day); err != nil {
		return nil, fmt.Errorf("не удалось записать день в календарь: %w", err)
	}

	// Upsert не трогает ранее выставленный статус, перечитываем
	stored, err := s.repo.Calendar.Get(userID, date)
	if err != nil {
		return nil, err
	}

	result := &DayView{
		Plan:         view,
		Level:        settings.Level,
		Status:       models.DayStatusPlanned,
		DefaultStart: settings.StartDate == nil,
	}
	if stored != nil {
		result.Status = stored.Status
		if stored.Level != "" {
			result.Level = stored.Level
		}
	}
	return result, nil
}

// SetDayStatus отмечает день выполненным или пропущенным
func (s *DayService) SetDayStatus(userID int, date time.Time, status models.DayStatus) error {
	return s.repo.Calendar.SetStatus(userID, date, status)
}

// SetDayLevel меняет уровень сложности одного дня
func (s *DayService) SetDayLevel(userID int, date time.Time, level models.Level) error {
	return s.repo.Calendar.SetLevel(userID, date, level)
}

// SetStartDate задаёт дату позиции 0 цикла
func (s *DayService) SetStartDate(userID int, date time.Time) error {
	return s.repo.User.SetStartDate(userID, date)
}

// SetOverride записывает ручную корректировку упражнения
func (s *DayService) SetOverride(userID int, exerciseName, deltaText string, at time.Time) error {
	return s.repo.Override.ForUser(userID).SetOverride(exerciseName, deltaText, at)
}

// UpcomingDays собирает план на ближайшие дни, начиная с date.
// Дни без заданной даты старта вернут ошибку
func (s *DayService) UpcomingDays(userID int, date time.Time, count int) ([]*models.DayPlanView, error) {
	settings, err := s.repo.User.GetSettings(userID)
	if err != nil {
		return nil, err
	}
	startDate := cycleEpoch
	if settings.StartDate != nil {
		startDate = *settings.StartDate
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	ledger := s.repo.Override.ForUser(userID)
	views := make([]*models.DayPlanView, 0, count)
	for i := 0; i < count; i++ {
		view, err := s.assembler.AssembleFrom(snap, date.AddDate(0, 0, i), startDate, ledger)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// RunAutoprogression применяет должные правила всех пользователей.
// Запускается планировщиком раз в сутки
func (s *DayService) RunAutoprogression(today time.Time) {
	ids, err := s.repo.User.ListIDs()
	if err != nil {
		log.Printf("Автопрогрессия: не удалось получить пользователей: %v", err)
		return
	}

	total := 0
	for _, userID := range ids {
		engine := progression.NewEngine(
			s.repo.Rule.ForUser(userID),
			s.repo.Override.ForUser(userID),
		)
		applied, err := engine.RunOnce(today)
		if err != nil {
			log.Printf("Автопрогрессия пользователя %d: %v", userID, err)
			continue
		}
		total += applied
	}
	if total > 0 {
		log.Printf("Автопрогрессия: применено %d правил", total)
	}
}
