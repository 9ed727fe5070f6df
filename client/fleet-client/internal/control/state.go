package control

// Phase is the coarse status of a control.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is what a control exposes to the presentation layer. Err is non-empty only in PhaseFailed.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   string
}

// Loading reports whether a read is in flight.
func (s State[T]) Loading() bool { return s.Phase == PhaseLoading }

// Failed reports whether the last action failed.
func (s State[T]) Failed() bool { return s.Phase == PhaseFailed }

// Begin starts a read: clears the error and enters PhaseLoading.
func Begin[T any](s State[T]) State[T] {
	s.Phase = PhaseLoading
	s.Err = ""
	return s
}

// BeginWrite starts a create/update/delete: clears the error without entering PhaseLoading,
// so a list stays interactive during a write.
func BeginWrite[T any](s State[T]) State[T] {
	return ClearError(s)
}

// Succeed stores the result of a read.
func Succeed[T any](s State[T], data T) State[T] {
	s.Phase = PhaseLoaded
	s.Data = data
	s.Err = ""
	return s
}

// Merge stores the result of a write. A read still in flight keeps PhaseLoading.
func Merge[T any](s State[T], data T) State[T] {
	s.Data = data
	s.Err = ""
	if s.Phase != PhaseLoading {
		s.Phase = PhaseLoaded
	}
	return s
}

// Fail records msg and leaves Data untouched.
func Fail[T any](s State[T], msg string) State[T] {
	s.Phase = PhaseFailed
	s.Err = msg
	return s
}

// Settle ends a read whose result was never applied.
func Settle[T any](s State[T]) State[T] {
	if s.Phase == PhaseLoading {
		s.Phase = PhaseIdle
	}
	return s
}

// ClearError drops a failure, returning to idle.
func ClearError[T any](s State[T]) State[T] {
	s.Err = ""
	if s.Phase == PhaseFailed {
		s.Phase = PhaseIdle
	}
	return s
}
