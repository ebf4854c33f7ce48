package prodplan

import (
	"fmt"
	"math/rand"
)

// Job - одна работа: идентификатор, время обработки p, вес w и время
// доступности r. Работа не может быть прервана после запуска.
type Job struct {
	ID      int
	Proc    int
	Weight  int
	Release int
}

// Instance - неизменяемое описание задачи 1|r_j|sum w_j C_j.
// Порядок работ используется только для детерминированного обхода.
type Instance struct {
	jobs []Job
}

// NewInstance собирает экземпляр из параллельных срезов атрибутов.
// Длины срезов должны совпадать, p[i] > 0, идентификаторы уникальны.
func NewInstance(ids, proc, weights, release []int) (*Instance, error) {
	n := len(ids)
	if len(proc) != n || len(weights) != n || len(release) != n {
		return nil, fmt.Errorf("%w: ids=%d p=%d w=%d r=%d",
			ErrLengthMismatch, n, len(proc), len(weights), len(release))
	}

	seen := make(map[int]struct{}, n)
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		if ids[i] <= 0 {
			return nil, fmt.Errorf("%w (got %d)", ErrBadID, ids[i])
		}
		if _, ok := seen[ids[i]]; ok {
			return nil, fmt.Errorf("%w (id %d)", ErrDuplicateID, ids[i])
		}
		seen[ids[i]] = struct{}{}
		if proc[i] <= 0 {
			return nil, fmt.Errorf("%w (job %d got %d)", ErrNonPositiveProc, ids[i], proc[i])
		}
		if weights[i] < 0 || release[i] < 0 {
			return nil, fmt.Errorf("%w (job %d: w=%d r=%d)", ErrNegativeAttr, ids[i], weights[i], release[i])
		}
		jobs[i] = Job{ID: ids[i], Proc: proc[i], Weight: weights[i], Release: release[i]}
	}
	return &Instance{jobs: jobs}, nil
}

// Len возвращает количество работ.
func (inst *Instance) Len() int { return len(inst.jobs) }

// Jobs возвращает копию списка работ в порядке обхода.
func (inst *Instance) Jobs() []Job {
	out := make([]Job, len(inst.jobs))
	copy(out, inst.jobs)
	return out
}

// Job возвращает работу по позиции обхода (не по идентификатору).
func (inst *Instance) Job(i int) Job { return inst.jobs[i] }

// RandomInstance генерирует экземпляр с идентификаторами 1..n.
// Используется в тестах и для прогонов без входных данных.
func RandomInstance(n, maxProc, maxWeight, maxRelease int, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if n < 0 || maxProc <= 0 {
		panic("invalid instance bounds")
	}
	ids := make([]int, n)
	proc := make([]int, n)
	weights := make([]int, n)
	release := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = i + 1
		proc[i] = 1 + rng.Intn(maxProc)
		if maxWeight > 0 {
			weights[i] = rng.Intn(maxWeight + 1)
		}
		if maxRelease > 0 {
			release[i] = rng.Intn(maxRelease + 1)
		}
	}
	inst, err := NewInstance(ids, proc, weights, release)
	if err != nil {
		panic(err)
	}
	return inst
}
