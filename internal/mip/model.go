// Package mip содержит независимое от солвера представление
// смешанно-целочисленной модели: переменные, линейные ограничения и цель.
// Конкретные бэкенды (lp_solve, CP-SAT) транслируют модель в свой формат.
package mip

import "fmt"

// VarKind - тип переменной решения.
type VarKind int

const (
	Continuous VarKind = iota
	Integer
	Binary
)

// Var - объявленная переменная с границами. Нижняя граница всегда >= 0:
// все величины задачи (старты, завершения, индикаторы) неотрицательны.
type Var struct {
	Name string
	Kind VarKind
	Lb   int64
	Ub   int64
}

// Term - слагаемое coef * var.
type Term struct {
	Var  int
	Coef int64
}

// Expr - линейное выражение sum(coef_i * var_i) + Const.
type Expr struct {
	Terms []Term
	Const int64
}

// NewExpr возвращает пустое выражение.
func NewExpr() *Expr { return &Expr{} }

// Add добавляет слагаемое coef*var и возвращает то же выражение.
func (e *Expr) Add(v int, coef int64) *Expr {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})
	return e
}

// AddConst добавляет константу.
func (e *Expr) AddConst(c int64) *Expr {
	e.Const += c
	return e
}

// Sense - знак ограничения.
type Sense int

const (
	LE Sense = iota // <=
	GE              // >=
	EQ              // ==
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	}
	return "?"
}

// Constraint - линейное ограничение Expr (Sense) RHS.
type Constraint struct {
	Expr  Expr
	Sense Sense
	RHS   int64
}

// Model - одна модель для одного решения: владеет своими переменными,
// ограничениями и целью, никогда не разделяется между формулировками.
type Model struct {
	Name string

	vars    []Var
	byName  map[string]int
	constrs []Constraint

	objective Expr
	hasObj    bool
}

// NewModel возвращает пустую модель с именем (имя попадает в события
// наблюдателя и в сообщения об ошибках бэкендов).
func NewModel(name string) *Model {
	return &Model{Name: name, byName: make(map[string]int)}
}

// AddBinary объявляет бинарную переменную и возвращает её индекс.
func (m *Model) AddBinary(name string) int {
	return m.addVar(Var{Name: name, Kind: Binary, Lb: 0, Ub: 1})
}

// AddInt объявляет целочисленную переменную в границах [lb, ub].
func (m *Model) AddInt(name string, lb, ub int64) int {
	return m.addVar(Var{Name: name, Kind: Integer, Lb: lb, Ub: ub})
}

// AddContinuous объявляет непрерывную переменную в границах [lb, ub].
func (m *Model) AddContinuous(name string, lb, ub int64) int {
	return m.addVar(Var{Name: name, Kind: Continuous, Lb: lb, Ub: ub})
}

func (m *Model) addVar(v Var) int {
	if _, ok := m.byName[v.Name]; ok {
		panic(fmt.Sprintf("mip: duplicate variable name %q", v.Name))
	}
	m.vars = append(m.vars, v)
	m.byName[v.Name] = len(m.vars) - 1
	return len(m.vars) - 1
}

// AddConstraint добавляет ограничение expr (sense) rhs.
func (m *Model) AddConstraint(expr *Expr, sense Sense, rhs int64) {
	m.constrs = append(m.constrs, Constraint{Expr: *expr, Sense: sense, RHS: rhs})
}

// Minimize задаёт целевую функцию (модель всегда минимизирует).
func (m *Model) Minimize(expr *Expr) {
	m.objective = *expr
	m.hasObj = true
}

// NumVars возвращает количество переменных.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints возвращает количество ограничений.
func (m *Model) NumConstraints() int { return len(m.constrs) }

// Vars возвращает объявленные переменные в порядке объявления.
func (m *Model) Vars() []Var { return m.vars }

// Constraints возвращает ограничения в порядке добавления.
func (m *Model) Constraints() []Constraint { return m.constrs }

// Objective возвращает целевую функцию.
func (m *Model) Objective() Expr { return m.objective }

// HasObjective сообщает, была ли задана цель.
func (m *Model) HasObjective() bool { return m.hasObj }

// VarByName возвращает индекс переменной по имени.
func (m *Model) VarByName(name string) (int, bool) {
	i, ok := m.byName[name]
	return i, ok
}
