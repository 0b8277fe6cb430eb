package interner

// CheckInvariants verifies the internal consistency of p's table.
func CheckInvariants[T any](p Pool[T]) error {
	return withTable(p.(tableAccess[T]), func(t *table[T]) error {
		return t.checkInvariants()
	})
}
