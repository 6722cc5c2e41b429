package baseerror

// Error is a sentinel error that may have a parent. errors.Is walks the parent
// chain through Unwrap, so a child error matches every ancestor, which allows
// to declare error families such as "service error" > "not found".
type Error struct {
	parent error
	msg    string
}

// New creates a root error.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// New creates a child error of err.
func (err *Error) New(msg string) *Error {
	return &Error{
		parent: err,
		msg:    msg,
	}
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.parent
}
