// Package solve содержит адаптеры внешних солверов к границе mip.Solver.
// Ядро не знает, какой бэкенд выбран: ему важны только статус и значения
// переменных.
package solve

import (
	"context"
	"time"

	"github.com/draffensperger/golp"

	"prodPlan/internal/mip"
)

// LpSolve решает модель через lp_solve (привязки golp).
//
// lp_solve нельзя прервать во время решения: контекст проверяется до
// запуска, таймаут обеспечивает вызывающая сторона. Нижняя граница столбца
// в lp_solve по умолчанию 0, что совпадает с моделью; остальные границы
// добавляются строками ограничений.
type LpSolve struct{}

// Solve реализует mip.Solver.
func (LpSolve) Solve(ctx context.Context, m *mip.Model) (mip.Solution, error) {
	if err := ctx.Err(); err != nil {
		return mip.Solution{Status: mip.StatusError}, err
	}

	vars := m.Vars()
	lp := golp.NewLP(0, len(vars))
	for i, v := range vars {
		lp.SetColName(i, v.Name)
		if v.Kind != mip.Continuous {
			lp.SetInt(i, true)
		}
		if v.Lb != 0 {
			lp.AddConstraintSparse([]golp.Entry{{Col: i, Val: 1}}, golp.GE, float64(v.Lb))
		}
		lp.AddConstraintSparse([]golp.Entry{{Col: i, Val: 1}}, golp.LE, float64(v.Ub))
	}

	for _, c := range m.Constraints() {
		entries := make([]golp.Entry, 0, len(c.Expr.Terms))
		for _, t := range c.Expr.Terms {
			entries = append(entries, golp.Entry{Col: t.Var, Val: float64(t.Coef)})
		}
		lp.AddConstraintSparse(entries, lpSense(c.Sense), float64(c.RHS-c.Expr.Const))
	}

	objConst := 0.0
	if m.HasObjective() {
		row := make([]float64, len(vars))
		for _, t := range m.Objective().Terms {
			row[t.Var] += float64(t.Coef)
		}
		objConst = float64(m.Objective().Const)
		lp.SetObjFn(row, false)
	}

	started := time.Now()
	ret := lp.Solve()
	dur := time.Since(started)

	sol := mip.Solution{Status: lpStatus(ret), Duration: dur}
	if sol.Status == mip.StatusOptimal {
		sol.Objective = lp.GetObjective() + objConst
		values := lp.GetVariables()
		sol.Values = make([]float64, len(vars))
		copy(sol.Values, values)
	}
	return sol, nil
}

func lpSense(s mip.Sense) golp.ConstraintType {
	switch s {
	case mip.LE:
		return golp.LE
	case mip.GE:
		return golp.GE
	default:
		return golp.EQ
	}
}

func lpStatus(ret golp.SolutionStatus) mip.Status {
	switch ret {
	case golp.OPTIMAL:
		return mip.StatusOptimal
	case golp.INFEASIBLE:
		return mip.StatusInfeasible
	case golp.UNBOUNDED:
		return mip.StatusUnbounded
	case golp.SUBOPTIMAL:
		return mip.StatusNotSolved
	default:
		return mip.StatusError
	}
}
