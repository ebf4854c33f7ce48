package prodplan

// BigM возвращает безопасную константу max(r) + sum(p): позднее этого момента
// ни одна работа не завершается ни в каком допустимом расписании без
// лишних простоев. Та же величина служит горизонтом дискретизации времени.
func BigM(inst *Instance) (int, error) {
	if inst == nil || inst.Len() == 0 {
		return 0, ErrEmptyInstance
	}
	maxR := 0
	sumP := 0
	for _, j := range inst.jobs {
		if j.Release > maxR {
			maxR = j.Release
		}
		sumP += j.Proc
	}
	return maxR + sumP, nil
}
