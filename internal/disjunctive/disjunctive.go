// Package disjunctive - парная big-M формулировка задачи 1|r_j|sum w_j C_j.
//
// Переменные: x[j,k] - бинарный индикатор "j раньше k" для упорядоченных
// пар различных работ, S[j] и C[j] - целочисленные старт и завершение.
//
// Ограничения:
//  1. C[j] == S[j] + p[j]
//  2. S[j] >= r[j]
//  3. S[k] + M*(1 - x[j,k]) >= C[j] - если j раньше k, то k не стартует
//     до завершения j; при x[j,k]=0 ограничение не действует, так как M
//     мажорирует любое допустимое завершение
//  4. x[j,k] + x[k,j] == 1 - ровно один из двух порядков
//
// Диагональные индикаторы x[j,j] не создаются: в исходной постановке они
// оставались свободными и лишь тратили по одной бинарной переменной на
// работу, не влияя на допустимость.
//
// Количество переменных и ограничений растёт как O(n^2).
package disjunctive

import (
	"fmt"

	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

const name = "disjunctive"

// Config - настройки формулировки.
type Config struct {
	// BigM переопределяет выведенную константу max(r)+sum(p);
	// 0 - использовать выведенную. Переопределение не может быть меньше
	// выведенной: меньшая константа делает ограничение 3 связывающим там,
	// где оно обязано быть свободным.
	BigM int
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config { return Config{BigM: 0} }

// Validate проверяет конфигурацию.
func (c Config) Validate() error {
	if c.BigM < 0 {
		return fmt.Errorf("BigM должно быть >= 0 (получено %d)", c.BigM)
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

// Build строит модель по экземпляру.
func (f *Formulation) Build(inst *prodplan.Instance) (*mip.Model, error) {
	derived, err := prodplan.BigM(inst)
	if err != nil {
		return nil, err
	}
	bigM := derived
	if f.Cfg.BigM != 0 {
		if f.Cfg.BigM < derived {
			return nil, fmt.Errorf("disjunctive: big-M override %d below derived safe bound %d", f.Cfg.BigM, derived)
		}
		bigM = f.Cfg.BigM
	}

	jobs := inst.Jobs()
	m := mip.NewModel(name)

	varS := make([]int, len(jobs))
	varC := make([]int, len(jobs))
	for i, j := range jobs {
		varS[i] = m.AddInt(fmt.Sprintf("S(%d)", j.ID), 0, int64(bigM))
		varC[i] = m.AddInt(fmt.Sprintf("C(%d)", j.ID), 0, int64(bigM))
	}
	varX := make([][]int, len(jobs))
	for i := range jobs {
		varX[i] = make([]int, len(jobs))
		for k := range jobs {
			if i == k {
				varX[i][k] = -1
				continue
			}
			varX[i][k] = m.AddBinary(fmt.Sprintf("x(%d,%d)", jobs[i].ID, jobs[k].ID))
		}
	}

	for i, j := range jobs {
		// Ограничение 1: C - S == p.
		m.AddConstraint(mip.NewExpr().Add(varC[i], 1).Add(varS[i], -1), mip.EQ, int64(j.Proc))
		// Ограничение 2: S >= r.
		m.AddConstraint(mip.NewExpr().Add(varS[i], 1), mip.GE, int64(j.Release))
		for k := range jobs {
			if i == k {
				continue
			}
			// Ограничение 3: S[k] - M*x[j,k] - C[j] >= -M.
			m.AddConstraint(
				mip.NewExpr().Add(varS[k], 1).Add(varX[i][k], -int64(bigM)).Add(varC[i], -1),
				mip.GE, -int64(bigM),
			)
			// Ограничение 4, по одному разу на неупорядоченную пару.
			if i < k {
				m.AddConstraint(mip.NewExpr().Add(varX[i][k], 1).Add(varX[k][i], 1), mip.EQ, 1)
			}
		}
	}

	obj := mip.NewExpr()
	for i, j := range jobs {
		obj.Add(varC[i], int64(j.Weight))
	}
	m.Minimize(obj)
	return m, nil
}

// Decode восстанавливает расписание из решённых значений: работы
// сортируются по значению S, при равенстве - по идентификатору.
func (f *Formulation) Decode(inst *prodplan.Instance, m *mip.Model, sol mip.Solution) (form.Result, error) {
	sched, err := form.DecodeStartFinish(name, inst, m, sol)
	if err != nil {
		return form.Result{}, err
	}
	if err := form.CheckPrecedencePairs(name, inst, m, sol); err != nil {
		return form.Result{}, err
	}
	return form.Finish(name, inst, sched, sol.Objective)
}
