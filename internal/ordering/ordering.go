// Package ordering - формулировка линейного порядка для 1|r_j|sum w_j C_j.
//
// Переменные те же, что и в парной big-M формулировке (x[j,k], S[j], C[j]),
// но старт ограничивается не дизъюнкцией с большой константой, а суммой по
// предшественникам:
//
//	S[j] >= r[k]*x[k,j] + sum_i p[i]*(x[i,j] - x[i,k])   для каждой пары (j,k)
//
// то есть j стартует не раньше, чем доступен предшественник k плюс вся
// обработка работ от k до j в выбранном порядке. Плюс взаимное исключение
// x[j,k] + x[k,j] == 1 и запрет направленных 3-циклов (ограничение
// транзитивности) x[j,k] + x[k,i] + x[i,j] <= 2 - необходимое условие
// того, что x кодирует согласованный полный порядок.
//
// Исходная постановка задумывалась под метод отсекающих плоскостей, где
// нарушенные неравенства добавляются по требованию; здесь воспроизведена
// статическая версия с полным перечислением троек. Начальная релаксация
// того цикла (только C[j] >= r[j] + p[j]) доступна через Seed.
package ordering

import (
	"fmt"

	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

const name = "ordering"

// Formulation реализует form.Formulation.
type Formulation struct{}

// New возвращает формулировку.
func New() *Formulation { return &Formulation{} }

// Name возвращает имя формулировки для таблицы сравнения.
func (f *Formulation) Name() string { return name }

// Build строит модель по экземпляру.
func (f *Formulation) Build(inst *prodplan.Instance) (*mip.Model, error) {
	bigM, err := prodplan.BigM(inst)
	if err != nil {
		return nil, err
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

	for j, job := range jobs {
		m.AddConstraint(mip.NewExpr().Add(varC[j], 1).Add(varS[j], -1), mip.EQ, int64(job.Proc))
		m.AddConstraint(mip.NewExpr().Add(varS[j], 1), mip.GE, int64(job.Release))

		for k := range jobs {
			if j == k {
				continue
			}
			// В виде "все влево":
			//
			//   S[j] - (r[k]+p[k])*x[k,j] + p[j]*x[j,k]
			//        - sum_{i != j,k} p[i]*x[i,j] + sum_{i != j,k} p[i]*x[i,k] >= 0
			//
			// Коэффициент при x[k,j] объединяет слагаемое r[k]*x[k,j] и
			// вклад i=k суммы предшественников; x[j,j] и x[k,k] не
			// существуют, поэтому соответствующие слагаемые выпадают.
			expr := mip.NewExpr().
				Add(varS[j], 1).
				Add(varX[k][j], -int64(jobs[k].Release+jobs[k].Proc)).
				Add(varX[j][k], int64(job.Proc))
			for i := range jobs {
				if i == j || i == k {
					continue
				}
				expr.Add(varX[i][j], -int64(jobs[i].Proc))
				expr.Add(varX[i][k], int64(jobs[i].Proc))
			}
			m.AddConstraint(expr, mip.GE, 0)

			if j < k {
				m.AddConstraint(mip.NewExpr().Add(varX[j][k], 1).Add(varX[k][j], 1), mip.EQ, 1)
			}
		}
	}

	// Запрет обоих направленных 3-циклов каждой тройки работ.
	for a := 0; a < len(jobs); a++ {
		for b := a + 1; b < len(jobs); b++ {
			for c := b + 1; c < len(jobs); c++ {
				m.AddConstraint(
					mip.NewExpr().Add(varX[a][b], 1).Add(varX[b][c], 1).Add(varX[c][a], 1),
					mip.LE, 2,
				)
				m.AddConstraint(
					mip.NewExpr().Add(varX[a][c], 1).Add(varX[c][b], 1).Add(varX[b][a], 1),
					mip.LE, 2,
				)
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

// Decode восстанавливает расписание из решённых значений S и C.
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

// Seed строит начальную релаксацию метода отсекающих плоскостей: только
// нижние границы завершения C[j] >= r[j] + p[j] и та же целевая функция.
// Значение её оптимума - нижняя оценка для полной модели.
func Seed(inst *prodplan.Instance) (*mip.Model, error) {
	bigM, err := prodplan.BigM(inst)
	if err != nil {
		return nil, err
	}
	m := mip.NewModel(name + "-seed")
	obj := mip.NewExpr()
	for _, j := range inst.Jobs() {
		c := m.AddInt(fmt.Sprintf("C(%d)", j.ID), 0, int64(bigM))
		m.AddConstraint(mip.NewExpr().Add(c, 1), mip.GE, int64(j.Release+j.Proc))
		obj.Add(c, int64(j.Weight))
	}
	m.Minimize(obj)
	return m, nil
}
