package prodplan

import (
	"fmt"
	"sort"
)

// Entry - размещение одной работы в декодированном расписании.
type Entry struct {
	Job    int // идентификатор работы
	Start  int
	Finish int
}

// Schedule - декодированное расписание, отсортированное по времени старта
// (при равенстве - по идентификатору работы).
type Schedule []Entry

// Sort приводит расписание к каноническому порядку.
func (s Schedule) Sort() {
	sort.Slice(s, func(a, b int) bool {
		if s[a].Start != s[b].Start {
			return s[a].Start < s[b].Start
		}
		return s[a].Job < s[b].Job
	})
}

// Order возвращает идентификаторы работ в порядке расписания.
func (s Schedule) Order() []int {
	out := make([]int, len(s))
	for i, e := range s {
		out[i] = e.Job
	}
	return out
}

// WeightedCompletion - каноническое значение цели sum w_j * C_j.
// Оно сравнимо между формулировками независимо от вида их целевой функции.
func (s Schedule) WeightedCompletion(inst *Instance) (int, error) {
	byID := make(map[int]Job, inst.Len())
	for _, j := range inst.jobs {
		byID[j.ID] = j
	}
	total := 0
	for _, e := range s {
		j, ok := byID[e.Job]
		if !ok {
			return 0, fmt.Errorf("prodplan: schedule mentions unknown job %d", e.Job)
		}
		total += j.Weight * e.Finish
	}
	return total, nil
}

// Validate проверяет инварианты расписания относительно экземпляра:
//   - каждая работа встречается ровно один раз;
//   - finish - start == p и start >= r для каждой работы;
//   - интервалы [start, finish) попарно не пересекаются.
func (s Schedule) Validate(inst *Instance) error {
	if len(s) != inst.Len() {
		return fmt.Errorf("prodplan: schedule has %d entries, instance has %d jobs", len(s), inst.Len())
	}
	byID := make(map[int]Job, inst.Len())
	for _, j := range inst.jobs {
		byID[j.ID] = j
	}
	seen := make(map[int]struct{}, len(s))
	for _, e := range s {
		j, ok := byID[e.Job]
		if !ok {
			return fmt.Errorf("prodplan: schedule mentions unknown job %d", e.Job)
		}
		if _, dup := seen[e.Job]; dup {
			return fmt.Errorf("prodplan: job %d scheduled twice", e.Job)
		}
		seen[e.Job] = struct{}{}
		if e.Finish-e.Start != j.Proc {
			return fmt.Errorf("prodplan: job %d has span %d, processing time %d", e.Job, e.Finish-e.Start, j.Proc)
		}
		if e.Start < j.Release {
			return fmt.Errorf("prodplan: job %d starts at %d before release %d", e.Job, e.Start, j.Release)
		}
	}

	ordered := make(Schedule, len(s))
	copy(ordered, s)
	ordered.Sort()
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if cur.Start < prev.Finish {
			return fmt.Errorf("prodplan: jobs %d and %d overlap ([%d,%d) vs [%d,%d))",
				prev.Job, cur.Job, prev.Start, prev.Finish, cur.Start, cur.Finish)
		}
	}
	return nil
}
