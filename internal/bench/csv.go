package bench

import (
	"encoding/csv"
	"os"

	"prodPlan/internal/mip"
)

// WriteCSV пишет таблицу сравнения: одна строка на ячейку прогона,
// порядок работ разворачивается в колонки 1..maxN (короткие строки
// дополняются пустыми ячейками). Колонка objective пуста, если статус
// не Optimal.
func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	maxJobs := 0
	for _, r := range records {
		if len(r.Order) > maxJobs {
			maxJobs = len(r.Order)
		}
	}

	header := []string{"model", "jobs", "status", "objective", "time_s"}
	for i := 1; i <= maxJobs; i++ {
		header = append(header, itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Formulation,
			itoa(r.Jobs),
			r.Status.String(),
			"",
			ftoa(r.SolveTime),
		}
		if r.Status == mip.StatusOptimal {
			row[3] = ftoa(r.Objective)
		}
		for i := 0; i < maxJobs; i++ {
			if i < len(r.Order) {
				row = append(row, itoa(r.Order[i]))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
