package repository

import "database/sql"

// schema создаёт таблицы при первом запуске
const schema = `
CREATE TABLE IF NOT EXISTS public.users (
	id SERIAL PRIMARY KEY,
	tg_id BIGINT UNIQUE NOT NULL,
	name TEXT,
	tz TEXT,
	chat_id BIGINT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS public.settings (
	user_id INTEGER PRIMARY KEY REFERENCES public.users(id),
	start_date DATE,
	level TEXT NOT NULL DEFAULT 'medium',
	reminders_json TEXT NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS public.calendar_days (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES public.users(id),
	date DATE NOT NULL,
	day_type TEXT NOT NULL,
	status TEXT NOT NULL,
	workout_key TEXT,
	level TEXT,
	kcal INTEGER,
	protein INTEGER,
	fat INTEGER,
	carbs INTEGER,
	note TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW(),
	updated_at TIMESTAMPTZ DEFAULT NOW(),
	UNIQUE(user_id, date)
);

CREATE TABLE IF NOT EXISTS public.overrides (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES public.users(id),
	exercise_name TEXT NOT NULL,
	delta_text TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL,
	UNIQUE(user_id, exercise_name)
);

CREATE TABLE IF NOT EXISTS public.progression_rules (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES public.users(id),
	workout_key TEXT NOT NULL,
	exercise_name TEXT NOT NULL,
	delta_text TEXT NOT NULL,
	interval_days INTEGER NOT NULL DEFAULT 7,
	last_applied DATE,
	created_at TIMESTAMPTZ DEFAULT NOW(),
	updated_at TIMESTAMPTZ DEFAULT NOW(),
	UNIQUE(user_id, workout_key, exercise_name)
);

CREATE TABLE IF NOT EXISTS public.progress_logs (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES public.users(id),
	date DATE NOT NULL,
	weight DOUBLE PRECISION,
	waist DOUBLE PRECISION,
	belly DOUBLE PRECISION,
	biceps DOUBLE PRECISION,
	chest DOUBLE PRECISION,
	note TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
`

// InitSchema инициализирует схему базы данных
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
