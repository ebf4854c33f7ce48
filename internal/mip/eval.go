package mip

import (
	"fmt"
	"math"
)

// Допуск на целочисленность и выполнение ограничений: бэкенды возвращают
// значения в float64 и могут вносить погрешность порядка 1e-9.
const Eps = 1e-6

// Eval вычисляет значение выражения в точке values.
func (e Expr) Eval(values []float64) float64 {
	total := float64(e.Const)
	for _, t := range e.Terms {
		total += float64(t.Coef) * values[t.Var]
	}
	return total
}

// Satisfied проверяет ограничение в точке values с допуском Eps.
func (c Constraint) Satisfied(values []float64) bool {
	lhs := c.Expr.Eval(values)
	rhs := float64(c.RHS)
	switch c.Sense {
	case LE:
		return lhs <= rhs+Eps
	case GE:
		return lhs >= rhs-Eps
	case EQ:
		return math.Abs(lhs-rhs) <= Eps
	}
	return false
}

// CheckPoint проверяет точку на всех ограничениях модели и на границах
// переменных; возвращает ошибку с первым нарушением. Используется тестами
// и декодерами как независимая от солвера проверка допустимости.
func (m *Model) CheckPoint(values []float64) error {
	if len(values) != len(m.vars) {
		return fmt.Errorf("mip: point has %d values, model has %d variables", len(values), len(m.vars))
	}
	for i, v := range m.vars {
		val := values[i]
		if val < float64(v.Lb)-Eps || val > float64(v.Ub)+Eps {
			return fmt.Errorf("mip: %s = %v outside bounds [%d, %d]", v.Name, val, v.Lb, v.Ub)
		}
		if v.Kind != Continuous && math.Abs(val-math.Round(val)) > Eps {
			return fmt.Errorf("mip: %s = %v is not integral", v.Name, val)
		}
	}
	for i, c := range m.constrs {
		if !c.Satisfied(values) {
			return fmt.Errorf("mip: constraint %d violated: lhs=%v %s %d", i, c.Expr.Eval(values), c.Sense, c.RHS)
		}
	}
	return nil
}
