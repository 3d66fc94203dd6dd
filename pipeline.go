package squish

// To is a "functional operations" factory method for Tables, chaining
// operations onto the given one in order. The input Table is never
// mutated; the Table produced by the final operation is returned.
func To(t Table, ops ...TableOperation) (Table, error) {
	var err error
	next := t
	for _, op := range ops {
		next, err = op(next)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
