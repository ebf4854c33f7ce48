package bench

import (
	"time"

	"prodPlan/internal/mip"
)

// BuildEvent - модель построена: размеры до передачи солверу.
type BuildEvent struct {
	Formulation string
	Jobs        int
	Vars        int
	Constraints int
}

// SolveEvent - солвер вернул ответ (или не смог).
type SolveEvent struct {
	Formulation string
	Jobs        int
	Status      mip.Status
	Objective   float64
	Duration    time.Duration
	Err         error
}

// Observer получает дискретные события прогона. Ядро не пишет ничего само:
// вывод (журнал, метрики) подключается снаружи через эту границу.
type Observer interface {
	ModelBuilt(BuildEvent)
	Solved(SolveEvent)
}

// NopObserver игнорирует все события.
type NopObserver struct{}

func (NopObserver) ModelBuilt(BuildEvent) {}
func (NopObserver) Solved(SolveEvent)     {}
