package simplify

import "fmt"

type ErrWriteLine struct {
	number int
	err    error
}

func NewErrWriteLine(number int, err error) error {
	return ErrWriteLine{
		number: number,
		err:    err,
	}
}

func (e ErrWriteLine) Error() string {
	return fmt.Sprintf("write line #%d: %s", e.number, e.err)
}

func (e ErrWriteLine) Unwrap() error {
	return e.err
}
