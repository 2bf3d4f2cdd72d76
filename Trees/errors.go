package Trees

// InvalidArgumentError is the panic value of operations given an argument
// they can never accept, such as inserting nil. The tree is left unchanged.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "Trees: invalid argument to " + e.Op + ": " + e.Reason
}
