package badnames

type AlsoBad struct {
	SkippedField uint8
}
