package hopscotch

// Diagnostics is an optional hook a caller can supply via WithDiagnostics
// to observe contention inside a List without the library itself taking a
// position on logging format or destination. Both methods must be cheap
// and non-blocking: ValidationRetry is called from Add and Remove every
// time an optimistic validation fails and the mutator restarts; BusyWaitSpin
// is called from Add's duplicate-check spin each time it re-checks a
// not-yet-fully-linked node after its initial spin budget is used up (the
// first busyWaitSpinBudget re-checks do not call it).
//
// The default Diagnostics is a no-op singleton, so callers who never ask
// for instrumentation pay nothing for it.
type Diagnostics interface {
	ValidationRetry(op string, attempt int)
	BusyWaitSpin(op string)
}

type noopDiagnostics struct{}

func (noopDiagnostics) ValidationRetry(string, int) {}
func (noopDiagnostics) BusyWaitSpin(string)         {}

var defaultDiagnostics Diagnostics = noopDiagnostics{}
