package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/golang/glog"

	"prodPlan/internal/bench"
	"prodPlan/internal/config"
	"prodPlan/internal/data"
	"prodPlan/internal/disjunctive"
	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/ordering"
	"prodPlan/internal/solve"
	"prodPlan/internal/timeindexed"
)

// glogObserver публикует события прогона в журнал.
type glogObserver struct{}

func (glogObserver) ModelBuilt(ev bench.BuildEvent) {
	log.Infof("модель %s (%d работ): переменных=%d ограничений=%d", ev.Formulation, ev.Jobs, ev.Vars, ev.Constraints)
}

func (glogObserver) Solved(ev bench.SolveEvent) {
	if ev.Err != nil {
		log.Errorf("солвер %s (%d работ): сбой: %v", ev.Formulation, ev.Jobs, ev.Err)
		return
	}
	log.Infof("решение %s (%d работ): статус=%s цель=%.2f время=%s", ev.Formulation, ev.Jobs, ev.Status, ev.Objective, ev.Duration)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт в конфигурации:", err)
		os.Exit(2)
	}

	// CLI флаги; умолчания берутся из окружения (.env).
	var (
		dataDir = flag.String("data", cfg.DataDir, "каталог с process.csv, weights.csv, release.csv")
		out     = flag.String("out", cfg.OutPath, "путь к выходному CSV-файлу")
		dbPath  = flag.String("db", cfg.DBPath, "путь к sqlite-базе результатов; пусто - не сохранять")
		maxJobs = flag.Int("max_jobs", cfg.MaxJobs, "прогон размеров задачи 1..max_jobs")
		forms   = flag.String("forms", "disjunctive,timeindexed,ordering", "список формулировок (через запятую)")
		backend = flag.String("solver", cfg.Solver, "бэкенд солвера: lpsolve | cpsat")
		timeout = flag.Duration("timeout", cfg.SolveTimeout, "таймаут одного решения; 0 - без ограничения")

		bigM    = flag.Int("bigm", 0, "переопределение big-M для парной формулировки; 0 - вывести из данных")
		horizon = flag.Int("horizon", 0, "переопределение горизонта время-индексированной формулировки; 0 - вывести из данных")
	)
	flag.Parse()
	defer log.Flush()

	if *maxJobs <= 0 {
		fmt.Fprintln(os.Stderr, "Конфликт: max_jobs должно быть > 0")
		os.Exit(2)
	}

	disjCfg := disjunctive.Config{BigM: *bigM}
	tiCfg := timeindexed.Config{Horizon: *horizon}

	available := map[string]func() (form.Formulation, error){
		"disjunctive": func() (form.Formulation, error) { return disjunctive.New(disjCfg) },
		"timeindexed": func() (form.Formulation, error) { return timeindexed.New(tiCfg) },
		"ordering":    func() (form.Formulation, error) { return ordering.New(), nil },
	}

	var selected []form.Formulation
	for _, name := range splitCSV(*forms) {
		factory, ok := available[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "Формулировка %q не предоставлена; доступные: disjunctive, timeindexed, ordering\n", name)
			os.Exit(2)
		}
		f, err := factory()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Конфликт в конфигурации формулировки %s: %v\n", name, err)
			os.Exit(2)
		}
		selected = append(selected, f)
	}
	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "Конфликт: не выбрана ни одна формулировка")
		os.Exit(2)
	}

	var solver mip.Solver
	switch *backend {
	case "lpsolve":
		solver = solve.LpSolve{}
	case "cpsat":
		solver = solve.CpSat{}
	default:
		fmt.Fprintf(os.Stderr, "Бэкенд %q не предоставлен; доступные: lpsolve, cpsat\n", *backend)
		os.Exit(2)
	}

	counts := make([]int, *maxJobs)
	for i := range counts {
		counts[i] = i + 1
	}

	runner := bench.Runner{
		Source:          data.Dir{Path: *dataDir},
		Solver:          solver,
		PerSolveTimeout: *timeout,
		Obs:             glogObserver{},
	}

	started := time.Now()
	records, err := runner.Run(context.Background(), counts, selected)
	if err != nil {
		log.Flush()
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
	log.Infof("прогон завершён: ячеек=%d время=%s", len(records), time.Since(started))

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка при записи в CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", *out)

	if *dbPath != "" {
		store, err := bench.OpenStore(*dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Ошибка при открытии базы:", err)
			os.Exit(1)
		}
		defer store.Close()
		for _, rec := range records {
			if err := store.Insert(rec); err != nil {
				fmt.Fprintln(os.Stderr, "Ошибка при записи в базу:", err)
				os.Exit(1)
			}
		}
		fmt.Println("Saved:", *dbPath)
	}
}

// helpers

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
