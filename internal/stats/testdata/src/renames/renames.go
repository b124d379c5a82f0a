// Package renames is a fixture with flagged functions of varying
// complexity.
package renames

func NonSnakeCaseName(x int) int {
	if x > 0 {
		x++
	}
	if x > 1 {
		x += 2
	}
	if x > 2 {
		x += 3
	}
	return x
}

func SimpleBadName() {}

type Tracker struct{}

func (t *Tracker) BadMethodName(flag bool) int {
	if flag {
		return 1
	}
	return 0
}
