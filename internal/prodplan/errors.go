package prodplan

import "errors"

var (
	// ErrEmptyInstance - экземпляр без работ: горизонт и big-M не определены.
	ErrEmptyInstance = errors.New("prodplan: instance has no jobs")
	// ErrLengthMismatch - параллельные срезы атрибутов разной длины.
	ErrLengthMismatch = errors.New("prodplan: attribute slices must have equal length")
	// ErrNonPositiveProc - время обработки должно быть строго положительным.
	ErrNonPositiveProc = errors.New("prodplan: processing time must be > 0")
	// ErrNegativeAttr - вес и время доступности не могут быть отрицательными.
	ErrNegativeAttr = errors.New("prodplan: weight and release time must be >= 0")
	// ErrDuplicateID - идентификаторы работ должны быть уникальными.
	ErrDuplicateID = errors.New("prodplan: duplicate job id")
	// ErrBadID - идентификатор работы должен быть положительным.
	ErrBadID = errors.New("prodplan: job id must be > 0")
)
