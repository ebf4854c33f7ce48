// Package form определяет общий контракт трёх формулировок: построение
// модели из экземпляра и декодирование решённых значений переменных в
// расписание. Аналог слоя Optimizer в бенчмарке, но для точных моделей.
package form

import (
	"errors"
	"fmt"

	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

// ErrInfeasibleModel - модель недопустима по построению (например, окно
// возможных стартов работы пусто при заданном горизонте). Это ожидаемый
// исход, а не сбой: прогон фиксируется со статусом Infeasible.
var ErrInfeasibleModel = errors.New("form: model is infeasible by construction")

// ErrSolver помечает сбой внешнего солвера (крах, неизвестный статус).
var ErrSolver = errors.New("form: solver failure")

// DecodeError - значения решённой модели нарушают инвариант формулировки
// (две единицы в паре x[j,k]/x[k,j], два старта у одной работы и т.п.).
// Это признак ошибки моделирования или численного сбоя; такой результат
// не записывается в таблицу, а поднимается наверх как ошибка.
type DecodeError struct {
	Formulation string
	Reason      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("form: decoding inconsistency in %s: %s", e.Formulation, e.Reason)
}

// Decodef возвращает DecodeError с форматированной причиной.
func Decodef(formulation, format string, args ...any) error {
	return &DecodeError{Formulation: formulation, Reason: fmt.Sprintf(format, args...)}
}

// Result - декодированный результат одного решения, единый для всех
// формулировок. Objective - каноническое sum w_j*C_j, пересчитанное из
// расписания; RawObjective - значение целевой функции самой модели
// (для время-индексированной формулировки они различаются).
type Result struct {
	Schedule     prodplan.Schedule
	Order        []int
	Objective    float64
	RawObjective float64
}

// Formulation строит модель по экземпляру и декодирует оптимальное решение.
// Build вызывается ровно один раз на экземпляр; Decode - только для
// решений со статусом Optimal и только для модели, построенной тем же
// Build.
type Formulation interface {
	Name() string
	Build(inst *prodplan.Instance) (*mip.Model, error)
	Decode(inst *prodplan.Instance, m *mip.Model, sol mip.Solution) (Result, error)
}

// Finish собирает Result из готового расписания: сортировка, порядок работ
// и каноническая цель. Общий хвост Decode всех формулировок.
func Finish(name string, inst *prodplan.Instance, sched prodplan.Schedule, rawObjective float64) (Result, error) {
	sched.Sort()
	if err := sched.Validate(inst); err != nil {
		return Result{}, Decodef(name, "%v", err)
	}
	wc, err := sched.WeightedCompletion(inst)
	if err != nil {
		return Result{}, Decodef(name, "%v", err)
	}
	return Result{
		Schedule:     sched,
		Order:        sched.Order(),
		Objective:    float64(wc),
		RawObjective: rawObjective,
	}, nil
}

// BinaryAt интерпретирует значение бинарной переменной с проверкой
// целочисленности; дробные значения - несогласованность декодирования.
func BinaryAt(name string, m *mip.Model, values []float64, v int) (bool, error) {
	val := values[v]
	switch {
	case val > 1-mip.Eps:
		return true, nil
	case val < mip.Eps:
		return false, nil
	default:
		return false, Decodef(name, "variable %s has fractional value %v", m.Vars()[v].Name, val)
	}
}

// IntAt округляет значение переменной до целого с проверкой допуска.
func IntAt(name string, m *mip.Model, values []float64, v int) (int, error) {
	val := values[v]
	rounded := int(val + 0.5)
	if diff := val - float64(rounded); diff > mip.Eps || diff < -mip.Eps {
		return 0, Decodef(name, "variable %s has non-integral value %v", m.Vars()[v].Name, val)
	}
	return rounded, nil
}
