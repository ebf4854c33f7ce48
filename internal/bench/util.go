package bench

import (
	"path/filepath"
	"strconv"
)

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func itoa(v int) string { return strconv.Itoa(v) }

func atoi(s string) (int, error) { return strconv.Atoi(s) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
