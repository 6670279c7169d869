package repository

import "database/sql"

// Repository содержит все репозитории
type Repository struct {
	User     *UserRepository
	Override *OverrideRepository
	Rule     *RuleRepository
	Calendar *CalendarRepository
	Progress *ProgressRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Override: NewOverrideRepository(db),
		Rule:     NewRuleRepository(db),
		Calendar: NewCalendarRepository(db),
		Progress: NewProgressRepository(db),
	}
}
