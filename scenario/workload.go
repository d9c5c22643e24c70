package scenario

import (
	"slices"

	"github.com/kbukum/pushgen/validation"
)

// Workload sizes the data set shared by the built-in scenarios.
//
// The data set is Rows identical rows of Size values each, where every value
// is repeated Repeat times in a row: 0,0,0,0,1,1,1,1,... for Repeat 4.
// Size must be a multiple of Repeat.
type Workload struct {
	Size      int `yaml:"size" mapstructure:"size" validate:"gte=1,lte=10000000"`
	Repeat    int `yaml:"repeat" mapstructure:"repeat" validate:"gte=1"`
	Rows      int `yaml:"rows" mapstructure:"rows" validate:"gte=1,lte=1000"`
	StopEvery int `yaml:"stop_every" mapstructure:"stop_every" validate:"gte=1"`
}

// DefaultWorkload returns the 100000-value, 10-row data set.
func DefaultWorkload() Workload {
	return Workload{Size: 100_000, Repeat: 4, Rows: 10, StopEvery: 7}
}

// ApplyDefaults fills unset fields from DefaultWorkload.
func (w *Workload) ApplyDefaults() {
	d := DefaultWorkload()
	if w.Size == 0 {
		w.Size = d.Size
	}
	if w.Repeat == 0 {
		w.Repeat = d.Repeat
	}
	if w.Rows == 0 {
		w.Rows = d.Rows
	}
	if w.StopEvery == 0 {
		w.StopEvery = d.StopEvery
	}
}

// Validate checks field ranges and that a row is made of whole runs of
// Repeat values.
func (w Workload) Validate() error {
	if err := validation.Validate(w); err != nil {
		return err
	}
	if appErr := validation.New().
		Custom(w.Repeat <= w.Size, "repeat", "must not exceed size").
		Custom(w.Repeat < 1 || w.Size%w.Repeat == 0, "size", "must be a multiple of repeat").
		Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Distinct returns the number of distinct values in a row.
func (w Workload) Distinct() int {
	return w.Size / w.Repeat
}

// MakeRow builds one row of the data set.
func (w Workload) MakeRow() []int {
	row := make([]int, 0, w.Distinct()*w.Repeat)
	for x := 0; x < w.Distinct(); x++ {
		for range w.Repeat {
			row = append(row, x)
		}
	}
	return row
}

// MakeData builds Rows independent copies of MakeRow.
func (w Workload) MakeData() [][]int {
	row := w.MakeRow()
	data := make([][]int, w.Rows)
	for i := range data {
		data[i] = slices.Clone(row)
	}
	return data
}
