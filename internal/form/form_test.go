package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodPlan/internal/mip"
	"prodPlan/internal/prodplan"
)

func testInstance(t *testing.T) *prodplan.Instance {
	t.Helper()
	inst, err := prodplan.NewInstance([]int{1, 2}, []int{3, 2}, []int{1, 2}, []int{0, 0})
	require.NoError(t, err)
	return inst
}

func TestFinish(t *testing.T) {
	inst := testInstance(t)
	sched := prodplan.Schedule{
		{Job: 1, Start: 2, Finish: 5},
		{Job: 2, Start: 0, Finish: 2},
	}
	res, err := Finish("demo", inst, sched, 40)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Order)
	assert.Equal(t, float64(2*2+1*5), res.Objective)
	assert.Equal(t, 40.0, res.RawObjective)
}

func TestFinishRejectsInvalidSchedule(t *testing.T) {
	inst := testInstance(t)
	// Пересекающиеся интервалы: декодер обязан это поймать.
	sched := prodplan.Schedule{
		{Job: 1, Start: 0, Finish: 3},
		{Job: 2, Start: 1, Finish: 3},
	}
	_, err := Finish("demo", inst, sched, 0)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "demo", derr.Formulation)
}

func TestBinaryAt(t *testing.T) {
	m := mip.NewModel("demo")
	v := m.AddBinary("x")

	got, err := BinaryAt("demo", m, []float64{0.9999999}, v)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = BinaryAt("demo", m, []float64{1e-9}, v)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = BinaryAt("demo", m, []float64{0.5}, v)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestIntAt(t *testing.T) {
	m := mip.NewModel("demo")
	v := m.AddInt("S", 0, 100)

	got, err := IntAt("demo", m, []float64{41.9999999}, v)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = IntAt("demo", m, []float64{41.4}, v)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

// pairModel строит минимальную модель с переменными обеих порядковых
// формулировок для двух работ.
func pairModel(t *testing.T) *mip.Model {
	t.Helper()
	m := mip.NewModel("demo")
	m.AddInt("S(1)", 0, 100)
	m.AddInt("C(1)", 0, 100)
	m.AddInt("S(2)", 0, 100)
	m.AddInt("C(2)", 0, 100)
	m.AddBinary("x(1,2)")
	m.AddBinary("x(2,1)")
	return m
}

func TestDecodeStartFinish(t *testing.T) {
	inst := testInstance(t)
	m := pairModel(t)

	sol := mip.Solution{Values: []float64{2, 5, 0, 2, 0, 1}}
	sched, err := DecodeStartFinish("demo", inst, m, sol)
	require.NoError(t, err)
	sched.Sort()
	assert.Equal(t, []int{2, 1}, sched.Order())
}

func TestDecodeStartFinishMismatch(t *testing.T) {
	inst := testInstance(t)
	m := pairModel(t)

	// C(1) != S(1) + p_1.
	sol := mip.Solution{Values: []float64{2, 6, 0, 2, 0, 1}}
	_, err := DecodeStartFinish("demo", inst, m, sol)
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Reason, "job 1")
}

func TestCheckPrecedencePairs(t *testing.T) {
	inst := testInstance(t)
	m := pairModel(t)

	require.NoError(t, CheckPrecedencePairs("demo", inst, m, mip.Solution{Values: []float64{2, 5, 0, 2, 0, 1}}))

	// Обе единицы в паре - несогласованность.
	err := CheckPrecedencePairs("demo", inst, m, mip.Solution{Values: []float64{2, 5, 0, 2, 1, 1}})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)

	// Оба нуля - тоже.
	err = CheckPrecedencePairs("demo", inst, m, mip.Solution{Values: []float64{2, 5, 0, 2, 0, 0}})
	require.ErrorAs(t, err, &derr)
}
