package mip

import (
	"context"
	"time"
)

// Status - итог обращения к внешнему солверу.
type Status int

const (
	StatusNotSolved Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "NotSolved"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusError:
		return "Error"
	}
	return "Unknown"
}

// Solution - статус, значение цели, значение каждой объявленной переменной
// (индексация совпадает с порядком объявления) и длительность решения.
// Objective и Values осмысленны только при StatusOptimal.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
	Duration  time.Duration
}

// Solver - граница внешнего солвера. Ядро передаёт модель как есть и
// читает назад статус и значения переменных; само решение - чёрный ящик.
// Решение может быть сколь угодно долгим, поэтому вызов принимает контекст;
// бэкенд обязан по возможности уважать дедлайн.
type Solver interface {
	Solve(ctx context.Context, m *Model) (Solution, error)
}
