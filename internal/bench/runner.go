package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

// Source поставляет экземпляры заданного размера (внешний коллаборатор -
// загрузчик данных).
type Source interface {
	Instance(n int) (*prodplan.Instance, error)
}

// Record - одна строка таблицы сравнения: формулировка и размер задачи
// плюс итог решения. Objective и Order осмысленны только при StatusOptimal.
type Record struct {
	Formulation string
	Jobs        int
	Status      mip.Status
	Objective   float64
	SolveTime   float64 // секунды
	Order       []int
}

// Runner прогоняет формулировки по возрастающим размерам задачи и собирает
// таблицу сравнения. Ячейки независимы: недопустимость или сбой солвера
// фиксируются строкой, и цикл продолжается; повторных попыток нет -
// при детерминированном солвере сбой воспроизводится. Порядок строк
// детерминирован: размеры в заданном порядке, формулировки в заданном
// порядке внутри размера.
type Runner struct {
	Source          Source
	Solver          mip.Solver
	PerSolveTimeout time.Duration // 0 - без ограничения
	Obs             Observer      // nil - события не публикуются
}

func (r Runner) observer() Observer {
	if r.Obs == nil {
		return NopObserver{}
	}
	return r.Obs
}

// RunCell выполняет одну ячейку (формулировка, размер). Ошибки валидации и
// несогласованность декодирования возвращаются как ошибки; недопустимость
// модели и сбои солвера - как заполненные строки.
func (r Runner) RunCell(ctx context.Context, f form.Formulation, jobs int) (Record, error) {
	rec := Record{Formulation: f.Name(), Jobs: jobs}

	inst, err := r.Source.Instance(jobs)
	if err != nil {
		return Record{}, fmt.Errorf("instance of size %d: %w", jobs, err)
	}

	m, err := f.Build(inst)
	if err != nil {
		if errors.Is(err, form.ErrInfeasibleModel) {
			rec.Status = mip.StatusInfeasible
			return rec, nil
		}
		return Record{}, fmt.Errorf("build %s (%d jobs): %w", f.Name(), jobs, err)
	}
	r.observer().ModelBuilt(BuildEvent{
		Formulation: f.Name(),
		Jobs:        jobs,
		Vars:        m.NumVars(),
		Constraints: m.NumConstraints(),
	})

	solveCtx := ctx
	cancel := func() {}
	if r.PerSolveTimeout > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, r.PerSolveTimeout)
	}
	sol, err := r.Solver.Solve(solveCtx, m)
	cancel()
	if err != nil {
		r.observer().Solved(SolveEvent{Formulation: f.Name(), Jobs: jobs, Status: mip.StatusError, Err: err})
		rec.Status = mip.StatusError
		return rec, nil
	}
	r.observer().Solved(SolveEvent{
		Formulation: f.Name(),
		Jobs:        jobs,
		Status:      sol.Status,
		Objective:   sol.Objective,
		Duration:    sol.Duration,
	})

	rec.Status = sol.Status
	rec.SolveTime = sol.Duration.Seconds()
	if sol.Status != mip.StatusOptimal {
		return rec, nil
	}

	res, err := f.Decode(inst, m, sol)
	if err != nil {
		// Несогласованность декодирования - признак ошибки моделирования,
		// она поднимается громко, а не превращается в строку таблицы.
		return Record{}, err
	}
	rec.Objective = res.Objective
	rec.Order = res.Order
	return rec, nil
}

// Run выполняет все ячейки (размер x формулировка) в детерминированном
// порядке и возвращает строки таблицы в порядке выполнения.
func (r Runner) Run(ctx context.Context, counts []int, forms []form.Formulation) ([]Record, error) {
	records := make([]Record, 0, len(counts)*len(forms))
	for _, n := range counts {
		for _, f := range forms {
			rec, err := r.RunCell(ctx, f, n)
			if err != nil {
				return records, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
