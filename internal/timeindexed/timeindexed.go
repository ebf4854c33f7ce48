// Package timeindexed - время-индексированная формулировка 1|r_j|sum w_j C_j.
//
// Время дискретизируется на слоты 1..horizon-1; бинарная z[j,t] означает
// "работа j стартует в слоте t". Переменные создаются только внутри окна
// допустимых стартов [max(1, r_j), horizon - p_j].
//
// Ограничения:
//  1. sum_t z[j,t] == 1 - каждая работа стартует ровно один раз; пустое
//     окно означает недопустимость модели по построению (ожидаемый исход
//     при заниженном горизонте, а не ошибка программы)
//  2. для каждого слота t: sum_j sum_{t' in [max(1,t-p_j+1), t]} z[j,t'] <= 1 -
//     в каждый момент обрабатывается не более одной работы
//
// Целевая функция повторяет исходную модель: sum_j w_j * p_j * sum_t t*z[j,t];
// сравнимое значение sum w_j*C_j пересчитывается при декодировании.
//
// Размер модели растёт как O(n * horizon) - формулировка включена именно
// как контраст масштабируемости к парной, растущей как O(n^2).
package timeindexed

import (
	"fmt"

	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

const name = "timeindexed"

// Config - настройки формулировки.
type Config struct {
	// Horizon переопределяет выведенный горизонт max(r)+sum(p);
	// 0 - использовать выведенный. Горизонт обязан строго превышать
	// позднейшее допустимое завершение, иначе модель недопустима
	// по построению.
	Horizon int
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config { return Config{Horizon: 0} }

// Validate проверяет конфигурацию.
func (c Config) Validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("Horizon должно быть >= 0 (получено %d)", c.Horizon)
	}
	return nil
}

// Formulation реализует form.Formulation.
type Formulation struct {
	Cfg Config
}

// New возвращает формулировку с валидацией конфигурации.
func New(cfg Config) (*Formulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formulation{Cfg: cfg}, nil
}

// Name возвращает имя формулировки для таблицы сравнения.
func (f *Formulation) Name() string { return name }

// окно допустимых стартов работы: [max(1, r), horizon - p]
func window(j prodplan.Job, horizon int) (lo, hi int) {
	lo = j.Release
	if lo < 1 {
		lo = 1
	}
	return lo, horizon - j.Proc
}

// Build строит модель по экземпляру.
func (f *Formulation) Build(inst *prodplan.Instance) (*mip.Model, error) {
	horizon, err := prodplan.BigM(inst)
	if err != nil {
		return nil, err
	}
	if f.Cfg.Horizon != 0 {
		horizon = f.Cfg.Horizon
	}

	jobs := inst.Jobs()
	m := mip.NewModel(name)

	// varZ[i][t] - индекс переменной z(id,t); вне окна остаётся -1.
	varZ := make([][]int, len(jobs))
	for i, j := range jobs {
		lo, hi := window(j, horizon)
		if lo > hi {
			return nil, fmt.Errorf("%w: job %d has empty start window [%d,%d] at horizon %d",
				form.ErrInfeasibleModel, j.ID, lo, hi, horizon)
		}
		varZ[i] = make([]int, horizon)
		for t := range varZ[i] {
			varZ[i][t] = -1
		}
		one := mip.NewExpr()
		for t := lo; t <= hi; t++ {
			varZ[i][t] = m.AddBinary(fmt.Sprintf("z(%d,%d)", j.ID, t))
			one.Add(varZ[i][t], 1)
		}
		// Ограничение 1.
		m.AddConstraint(one, mip.EQ, 1)
	}

	// Ограничение 2: взаимное исключение по каждому слоту.
	for t := 1; t < horizon; t++ {
		busy := mip.NewExpr()
		for i, j := range jobs {
			from := t - j.Proc + 1
			if from < 1 {
				from = 1
			}
			for td := from; td <= t; td++ {
				if varZ[i][td] >= 0 {
					busy.Add(varZ[i][td], 1)
				}
			}
		}
		if len(busy.Terms) > 0 {
			m.AddConstraint(busy, mip.LE, 1)
		}
	}

	obj := mip.NewExpr()
	for i, j := range jobs {
		lo, hi := window(j, horizon)
		for t := lo; t <= hi; t++ {
			obj.Add(varZ[i][t], int64(j.Weight)*int64(j.Proc)*int64(t))
		}
	}
	m.Minimize(obj)
	return m, nil
}

// Decode восстанавливает расписание: стартом работы считается
// единственный слот с z=1; вторая единица у той же работы -
// несогласованность декодирования.
func (f *Formulation) Decode(inst *prodplan.Instance, m *mip.Model, sol mip.Solution) (form.Result, error) {
	horizon, err := prodplan.BigM(inst)
	if err != nil {
		return form.Result{}, err
	}
	if f.Cfg.Horizon != 0 {
		horizon = f.Cfg.Horizon
	}

	jobs := inst.Jobs()
	sched := make(prodplan.Schedule, 0, len(jobs))
	for _, j := range jobs {
		lo, hi := window(j, horizon)
		start := -1
		for t := lo; t <= hi; t++ {
			idx, ok := m.VarByName(fmt.Sprintf("z(%d,%d)", j.ID, t))
			if !ok {
				return form.Result{}, form.Decodef(name, "model has no variable z(%d,%d)", j.ID, t)
			}
			chosen, err := form.BinaryAt(name, m, sol.Values, idx)
			if err != nil {
				return form.Result{}, err
			}
			if !chosen {
				continue
			}
			if start >= 0 {
				return form.Result{}, form.Decodef(name, "job %d has nonzero z at slots %d and %d", j.ID, start, t)
			}
			start = t
		}
		if start < 0 {
			return form.Result{}, form.Decodef(name, "job %d has no selected start slot", j.ID)
		}
		sched = append(sched, prodplan.Entry{Job: j.ID, Start: start, Finish: start + j.Proc})
	}

	return form.Finish(name, inst, sched, sol.Objective)
}
