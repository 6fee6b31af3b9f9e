package simplify

type ErrMissingPath struct{}

func (e ErrMissingPath) Error() string {
	return "input file path is missing"
}
