// Package data загружает атрибуты работ из трёх колоночных CSV-файлов:
// process.csv (колонка p), weights.csv (колонка w), release.csv (колонка r).
// Из каждого файла берутся первые n значений; идентификаторы работ - 1..n.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"prodPlan/internal/prodplan"
)

const (
	processFile = "process.csv"
	weightsFile = "weights.csv"
	releaseFile = "release.csv"
)

// Dir реализует bench.Source поверх каталога с тремя CSV-файлами.
type Dir struct {
	Path string
}

// Instance загружает первые n работ из каталога.
func (d Dir) Instance(n int) (*prodplan.Instance, error) {
	ids, p, w, r, err := LoadJobAttributes(d.Path, n)
	if err != nil {
		return nil, err
	}
	return prodplan.NewInstance(ids, p, w, r)
}

// LoadJobAttributes читает параллельные срезы атрибутов длины n.
func LoadJobAttributes(dir string, n int) (ids, p, w, r []int, err error) {
	p, err = readColumn(filepath.Join(dir, processFile), "p", n)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	w, err = readColumn(filepath.Join(dir, weightsFile), "w", n)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	r, err = readColumn(filepath.Join(dir, releaseFile), "r", n)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ids = make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids, p, w, r, nil
}

// readColumn читает первые n значений именованной колонки CSV-файла.
func readColumn(path, column string, n int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data: %s: missing header row", path)
	}

	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("data: %s: no column %q", path, column)
	}
	if len(rows)-1 < n {
		return nil, fmt.Errorf("data: %s: need %d rows, file has %d", path, n, len(rows)-1)
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(rows[i+1][col])
		if err != nil {
			return nil, fmt.Errorf("data: %s row %d: %w", path, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
