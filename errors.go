package interner

import "errors"

// ErrPoisoned is the panic value (wrapped) raised by every operation on a
// pool whose table was left inconsistent by a panic inside its critical
// section. A poisoned pool cannot be recovered.
var ErrPoisoned = errors.New("interner: pool poisoned by an earlier panic")
