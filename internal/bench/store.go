package bench

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"prodPlan/internal/mip"
)

// Store сохраняет строки таблицы сравнения в sqlite: результаты долгих
// прогонов переживают процесс и доступны для последующего анализа.
type Store struct {
	db *sql.DB
}

// OpenStore открывает (при необходимости создаёт) базу по пути.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bench: open store: %w", err)
	}

	createTableSQL := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		model TEXT NOT NULL,
		jobs INTEGER NOT NULL,
		status TEXT NOT NULL,
		objective REAL,
		time_s REAL NOT NULL,
		job_order TEXT NOT NULL
	);`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("bench: create runs table: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL;")
	_, _ = db.Exec("PRAGMA busy_timeout = 5000;")

	return &Store{db: db}, nil
}

// Close закрывает базу.
func (s *Store) Close() error { return s.db.Close() }

// Insert добавляет одну строку таблицы.
func (s *Store) Insert(rec Record) error {
	var objective sql.NullFloat64
	if rec.Status == mip.StatusOptimal {
		objective = sql.NullFloat64{Float64: rec.Objective, Valid: true}
	}
	query := `INSERT INTO runs (model, jobs, status, objective, time_s, job_order)
              VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query, rec.Formulation, rec.Jobs, rec.Status.String(), objective, rec.SolveTime, joinOrder(rec.Order))
	if err != nil {
		return fmt.Errorf("bench: insert run row: %w", err)
	}
	return nil
}

// Records возвращает все сохранённые строки в порядке вставки.
func (s *Store) Records() ([]Record, error) {
	rows, err := s.db.Query(`SELECT model, jobs, status, objective, time_s, job_order FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("bench: query runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec       Record
			status    string
			objective sql.NullFloat64
			order     string
		)
		if err := rows.Scan(&rec.Formulation, &rec.Jobs, &status, &objective, &rec.SolveTime, &order); err != nil {
			return nil, fmt.Errorf("bench: scan run row: %w", err)
		}
		rec.Status, err = parseStatus(status)
		if err != nil {
			return nil, err
		}
		if objective.Valid {
			rec.Objective = objective.Float64
		}
		rec.Order, err = splitOrder(order)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func joinOrder(order []int) string {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = itoa(id)
	}
	return strings.Join(parts, " ")
}

func splitOrder(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bench: bad job order value %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseStatus(s string) (mip.Status, error) {
	for _, st := range []mip.Status{
		mip.StatusNotSolved,
		mip.StatusOptimal,
		mip.StatusInfeasible,
		mip.StatusUnbounded,
		mip.StatusError,
	} {
		if st.String() == s {
			return st, nil
		}
	}
	return mip.StatusNotSolved, fmt.Errorf("bench: unknown status %q", s)
}
