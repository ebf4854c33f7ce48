package solve

import (
	"context"
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"google.golang.org/protobuf/proto"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"

	"prodPlan/internal/mip"
)

// CpSat решает модель через CP-SAT из or-tools. Все переменные модели
// целочисленные по построению формулировок, поэтому непрерывных столбцов
// транслировать не приходится; дедлайн контекста отображается в
// MaxTimeInSeconds.
type CpSat struct{}

// Solve реализует mip.Solver.
func (CpSat) Solve(ctx context.Context, m *mip.Model) (mip.Solution, error) {
	if err := ctx.Err(); err != nil {
		return mip.Solution{Status: mip.StatusError}, err
	}

	builder := cpmodel.NewCpModelBuilder()

	vars := make([]cpmodel.IntVar, m.NumVars())
	for i, v := range m.Vars() {
		vars[i] = builder.NewIntVar(v.Lb, v.Ub)
	}

	for _, c := range m.Constraints() {
		expr := cpmodel.NewConstant(c.Expr.Const)
		for _, t := range c.Expr.Terms {
			expr.AddTerm(vars[t.Var], t.Coef)
		}
		rhs := cpmodel.NewConstant(c.RHS)
		switch c.Sense {
		case mip.LE:
			builder.AddLessOrEqual(expr, rhs)
		case mip.GE:
			builder.AddGreaterOrEqual(expr, rhs)
		default:
			builder.AddEquality(expr, rhs)
		}
	}

	if m.HasObjective() {
		obj := cpmodel.NewConstant(m.Objective().Const)
		for _, t := range m.Objective().Terms {
			obj.AddTerm(vars[t.Var], t.Coef)
		}
		builder.Minimize(obj)
	}

	model, err := builder.Model()
	if err != nil {
		return mip.Solution{Status: mip.StatusError}, fmt.Errorf("solve: cp model build failed: %w", err)
	}

	params := &sppb.SatParameters{}
	if deadline, ok := ctx.Deadline(); ok {
		params.MaxTimeInSeconds = proto.Float64(time.Until(deadline).Seconds())
	}

	response, err := cpmodel.SolveCpModelWithParameters(model, params)
	if err != nil {
		return mip.Solution{Status: mip.StatusError}, fmt.Errorf("solve: cp-sat failed: %w", err)
	}

	sol := mip.Solution{
		Status:   cpStatus(response.GetStatus()),
		Duration: time.Duration(response.GetWallTime() * float64(time.Second)),
	}
	if sol.Status == mip.StatusOptimal {
		sol.Objective = response.GetObjectiveValue()
		sol.Values = make([]float64, len(vars))
		for i := range vars {
			sol.Values[i] = float64(cpmodel.SolutionIntegerValue(response, vars[i]))
		}
	}
	return sol, nil
}

func cpStatus(s cmpb.CpSolverStatus) mip.Status {
	switch s {
	case cmpb.CpSolverStatus_OPTIMAL:
		return mip.StatusOptimal
	case cmpb.CpSolverStatus_INFEASIBLE:
		return mip.StatusInfeasible
	case cmpb.CpSolverStatus_FEASIBLE:
		// Допустимое, но не доказанно оптимальное решение: время вышло.
		return mip.StatusNotSolved
	default:
		return mip.StatusError
	}
}
