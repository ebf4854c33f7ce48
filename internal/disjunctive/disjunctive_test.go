package disjunctive

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodPlan/internal/form"
	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

// assignment собирает точку модели из известного расписания: старты и
// завершения по словарю, индикаторы порядка - по сравнению стартов.
func assignment(t *testing.T, m *mip.Model, inst *prodplan.Instance, starts map[int]int) []float64 {
	t.Helper()
	values := make([]float64, m.NumVars())
	set := func(name string, v float64) {
		idx, ok := m.VarByName(name)
		require.True(t, ok, "нет переменной %s", name)
		values[idx] = v
	}
	jobs := inst.Jobs()
	for _, j := range jobs {
		set(fmt.Sprintf("S(%d)", j.ID), float64(starts[j.ID]))
		set(fmt.Sprintf("C(%d)", j.ID), float64(starts[j.ID]+j.Proc))
	}
	for _, a := range jobs {
		for _, b := range jobs {
			if a.ID == b.ID {
				continue
			}
			before := starts[a.ID] < starts[b.ID]
			if before {
				set(fmt.Sprintf("x(%d,%d)", a.ID, b.ID), 1)
			} else {
				set(fmt.Sprintf("x(%d,%d)", a.ID, b.ID), 0)
			}
		}
	}
	return values
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	_, err := New(Config{BigM: -1})
	require.Error(t, err)
}

func TestBuildSize(t *testing.T) {
	inst, err := prodplan.NewInstance(
		[]int{1, 2, 3},
		[]int{3, 2, 4},
		[]int{1, 1, 2},
		[]int{0, 0, 5},
	)
	require.NoError(t, err)

	f, err := New(DefaultConfig())
	require.NoError(t, err)
	m, err := f.Build(inst)
	require.NoError(t, err)

	// 2n стартов/завершений + n(n-1) индикаторов.
	assert.Equal(t, 2*3+3*2, m.NumVars())
	// 2n на работу + n(n-1) дизъюнкций + n(n-1)/2 взаимных исключений.
	assert.Equal(t, 2*3+3*2+3, m.NumConstraints())
	require.True(t, m.HasObjective())

	// Диагональные индикаторы не создаются.
	_, ok := m.VarByName("x(1,1)")
	assert.False(t, ok)
}

func TestBuildBigMOverride(t *testing.T) {
	inst, err := prodplan.NewInstance([]int{1, 2}, []int{3, 2}, []int{1, 1}, []int{0, 0})
	require.NoError(t, err)

	// Переопределение ниже выведенной границы max(r)+sum(p)=5 опасно.
	f, err := New(Config{BigM: 4})
	require.NoError(t, err)
	_, err = f.Build(inst)
	require.Error(t, err)

	// Большее значение допустимо: допустимость точек не меняется.
	f, err = New(Config{BigM: 1000})
	require.NoError(t, err)
	m, err := f.Build(inst)
	require.NoError(t, err)
	require.NoError(t, m.CheckPoint(assignment(t, m, inst, map[int]int{2: 0, 1: 2})))
}

func TestOptimalPointAndDecode(t *testing.T) {
	// Две работы без ограничений доступности: p=[3,2], w=[1,1].
	// Оптимален порядок (2,1): 2 + 5 = 7 против 3 + 5 = 8.
	inst, err := prodplan.NewInstance([]int{1, 2}, []int{3, 2}, []int{1, 1}, []int{0, 0})
	require.NoError(t, err)

	f, err := New(DefaultConfig())
	require.NoError(t, err)
	m, err := f.Build(inst)
	require.NoError(t, err)

	best := assignment(t, m, inst, map[int]int{2: 0, 1: 2})
	require.NoError(t, m.CheckPoint(best))
	assert.Equal(t, 7.0, m.Objective().Eval(best))

	// Обратный порядок тоже допустим, но дороже.
	worse := assignment(t, m, inst, map[int]int{1: 0, 2: 3})
	require.NoError(t, m.CheckPoint(worse))
	assert.Equal(t, 8.0, m.Objective().Eval(worse))

	sol := mip.Solution{
		Status:    mip.StatusOptimal,
		Objective: 7,
		Values:    best,
		Duration:  3 * time.Millisecond,
	}
	res, err := f.Decode(inst, m, sol)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Order)
	assert.Equal(t, 7.0, res.Objective)
	assert.Equal(t, 7.0, res.RawObjective)
	assert.Equal(t, prodplan.Schedule{
		{Job: 2, Start: 0, Finish: 2},
		{Job: 1, Start: 2, Finish: 5},
	}, res.Schedule)
}

func TestReleaseDelaysStart(t *testing.T) {
	// Одна работа с r=10: старт раньше релиза нарушает модель.
	inst, err := prodplan.NewInstance([]int{1}, []int{5}, []int{2}, []int{10})
	require.NoError(t, err)

	f, err := New(DefaultConfig())
	require.NoError(t, err)
	m, err := f.Build(inst)
	require.NoError(t, err)

	require.Error(t, m.CheckPoint(assignment(t, m, inst, map[int]int{1: 9})))

	point := assignment(t, m, inst, map[int]int{1: 10})
	require.NoError(t, m.CheckPoint(point))

	res, err := f.Decode(inst, m, mip.Solution{Status: mip.StatusOptimal, Objective: 30, Values: point})
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.Objective)
	assert.Equal(t, 10, res.Schedule[0].Start)
	assert.Equal(t, 15, res.Schedule[0].Finish)
}

func TestDecodeInconsistentPair(t *testing.T) {
	inst, err := prodplan.NewInstance([]int{1, 2}, []int{3, 2}, []int{1, 1}, []int{0, 0})
	require.NoError(t, err)

	f, err := New(DefaultConfig())
	require.NoError(t, err)
	m, err := f.Build(inst)
	require.NoError(t, err)

	values := assignment(t, m, inst, map[int]int{2: 0, 1: 2})
	idx, ok := m.VarByName("x(1,2)")
	require.True(t, ok)
	values[idx] = 1 // теперь x(1,2) и x(2,1) обе равны 1

	_, err = f.Decode(inst, m, mip.Solution{Status: mip.StatusOptimal, Values: values})
	var derr *form.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "disjunctive", derr.Formulation)
}
