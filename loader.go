package contacts

// Loader is the contract the UI layer depends on to obtain the employee list.
// Load returns immediately; the continuation is invoked exactly once with the outcome of that call,
// unless the loader is discarded before the outcome arrives, in which case it is never invoked.
type Loader interface {
	// Load issues one request for the employee list and reports its result to continuation.
	// Every call is independent: calls are neither coalesced nor cached.
	Load(continuation func(Result))
}

// Result is the single value delivered to a load continuation.
// Exactly one of Employees or Err is meaningful: Err is nil on success, and on failure it is a *LoadError
// matching either ErrConnectivity or ErrInvalidData.
type Result struct {
	Employees []Employee
	Err       error
}

// Success builds a successful result. A nil slice is normalized to an empty one.
func Success(employees []Employee) Result {
	if employees == nil {
		employees = []Employee{}
	}

	return Result{Employees: employees}
}

// Failure builds a failed result of the given kind.
func Failure(err *LoadError) Result {
	return Result{Err: err}
}

// Succeeded reports whether the load produced employees.
func (r Result) Succeeded() bool {
	return r.Err == nil
}
