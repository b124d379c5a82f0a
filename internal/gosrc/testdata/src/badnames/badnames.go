// Package badnames is a fixture with a mix of conformant and
// non-conformant declarations.
package badnames

func NonSnakeCaseName() {}

func foo2(ok_param string, CAPS_PARAM uint8) {
	_ = ok_param
	_ = CAPS_PARAM
}

func well_named(fine string) {
	_ = fine
}

func grouped(AAA, bbb int) {
	_ = AAA
	_ = bbb
}

func anon(string) {}

type non_camel_case_name struct{}

type SomeStruct struct {
	SomeField uint8
	ok_field  string
}

type Wrapper struct {
	SomeStruct
}

type Color int

const (
	ColorRed Color = iota
	ColorGreen
)

type Reader interface {
	Read() error
}
