package form

import (
	"fmt"

	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

// Обе порядковые формулировки (парная big-M и линейно-упорядоченная)
// используют одни и те же соглашения об именах переменных: S(id), C(id)
// для старта и завершения, x(a,b) для индикатора "a раньше b". Общее
// декодирование живёт здесь, а не дублируется по пакетам.

// DecodeStartFinish извлекает старт и завершение каждой работы из значений
// S(id) и C(id); расхождение C != S + p - несогласованность декодирования.
func DecodeStartFinish(formulation string, inst *prodplan.Instance, m *mip.Model, sol mip.Solution) (prodplan.Schedule, error) {
	jobs := inst.Jobs()
	sched := make(prodplan.Schedule, 0, len(jobs))
	for _, j := range jobs {
		sIdx, ok := m.VarByName(fmt.Sprintf("S(%d)", j.ID))
		if !ok {
			return nil, Decodef(formulation, "model has no start variable for job %d", j.ID)
		}
		cIdx, ok := m.VarByName(fmt.Sprintf("C(%d)", j.ID))
		if !ok {
			return nil, Decodef(formulation, "model has no completion variable for job %d", j.ID)
		}
		start, err := IntAt(formulation, m, sol.Values, sIdx)
		if err != nil {
			return nil, err
		}
		finish, err := IntAt(formulation, m, sol.Values, cIdx)
		if err != nil {
			return nil, err
		}
		if finish != start+j.Proc {
			return nil, Decodef(formulation, "job %d: C=%d, S+p=%d", j.ID, finish, start+j.Proc)
		}
		sched = append(sched, prodplan.Entry{Job: j.ID, Start: start, Finish: finish})
	}
	return sched, nil
}

// CheckPrecedencePairs проверяет, что индикаторы порядка образуют полный
// порядок: в каждой паре x(a,b), x(b,a) ровно одна единица.
func CheckPrecedencePairs(formulation string, inst *prodplan.Instance, m *mip.Model, sol mip.Solution) error {
	jobs := inst.Jobs()
	for i := range jobs {
		for k := i + 1; k < len(jobs); k++ {
			jkIdx, ok := m.VarByName(fmt.Sprintf("x(%d,%d)", jobs[i].ID, jobs[k].ID))
			if !ok {
				return Decodef(formulation, "model has no variable x(%d,%d)", jobs[i].ID, jobs[k].ID)
			}
			kjIdx, ok := m.VarByName(fmt.Sprintf("x(%d,%d)", jobs[k].ID, jobs[i].ID))
			if !ok {
				return Decodef(formulation, "model has no variable x(%d,%d)", jobs[k].ID, jobs[i].ID)
			}
			jk, err := BinaryAt(formulation, m, sol.Values, jkIdx)
			if err != nil {
				return err
			}
			kj, err := BinaryAt(formulation, m, sol.Values, kjIdx)
			if err != nil {
				return err
			}
			if jk == kj {
				return Decodef(formulation, "jobs %d and %d: x[j,k]=%v and x[k,j]=%v", jobs[i].ID, jobs[k].ID, jk, kj)
			}
		}
	}
	return nil
}
