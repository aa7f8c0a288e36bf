package namestesting

// TestCallCounter counts named calls, typically observer callbacks keyed by
// the kind of change they were told about.
type TestCallCounter struct {
	MethodCalls map[string]int
}

func (r *TestCallCounter) IncMethodCall(name string) int {
	if r.MethodCalls == nil {
		r.MethodCalls = make(map[string]int)
	}
	r.MethodCalls[name]++
	return r.MethodCalls[name]
}

func (r *TestCallCounter) Reset() {
	r.MethodCalls = make(map[string]int)
}

func (r *TestCallCounter) MethodCallCount(name string) int {
	return r.MethodCalls[name]
}

// Total returns the number of calls of any name.
func (r *TestCallCounter) Total() int {
	n := 0
	for _, c := range r.MethodCalls {
		n += c
	}
	return n
}
