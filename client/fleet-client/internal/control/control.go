// Package control holds the per-screen state containers. Each control owns its copy of the data it
// fetched, validates before writing, and merges write results locally without re-fetching.
package control

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"motofleet/client/fleet-client/internal/apiclient"
	"motofleet/client/fleet-client/internal/i18n"
	"motofleet/client/fleet-client/internal/validation"
)

// Alerter shows a blocking message to the user. Precondition failures go here, not into State.
type Alerter interface {
	Alert(title, message string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(title, message string)

func (f AlertFunc) Alert(title, message string) { f(title, message) }

// Route names a navigation destination.
type Route string

const (
	RouteWelcome          Route = "Welcome"
	RouteCadastroMoto     Route = "CadastroMoto"
	RouteLocateMoto       Route = "LocateMoto"
	RouteSectorSelection  Route = "SectorSelection"
	RouteMotoWithoutPlate Route = "MotoWithoutPlate"
	RouteToggleTheme      Route = "ToggleTheme"
	RouteLogout           Route = "Logout"
)

// Navigator resets the navigation stack to a single route.
type Navigator interface {
	Reset(route Route)
}

// Deps are the collaborators every control shares.
type Deps struct {
	Translator i18n.Translator
	Alerter    Alerter
	Schemas    *validation.Schemas
	Logger     *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Translator == nil {
		d.Translator = i18n.Identity
	}
	if d.Alerter == nil {
		d.Alerter = AlertFunc(func(string, string) {})
	}
	if d.Schemas == nil {
		d.Schemas = validation.New(d.Translator)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// base carries the state, liveness and change notification shared by every control.
type base[T any] struct {
	deps Deps

	mu        sync.Mutex
	state     State[T]
	closed    bool
	listeners []func()
}

func (b *base[T]) init(deps Deps, initial T) {
	b.deps = deps.withDefaults()
	b.state = State[T]{Data: initial}
}

// Snapshot returns the current state. Slices in Data are never mutated after publication.
func (b *base[T]) Snapshot() State[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// OnChange registers fn to run after every state transition.
func (b *base[T]) OnChange(fn func()) {
	b.mu.Lock()
	b.listeners = append(b.listeners, fn)
	b.mu.Unlock()
}

// Close detaches the control from its view. Pending actions finish but no longer touch state.
func (b *base[T]) Close() {
	b.mu.Lock()
	b.closed = true
	b.listeners = nil
	b.mu.Unlock()
}

// ClearError drops the current failure.
func (b *base[T]) ClearError() {
	b.update(ClearError[T])
}

func (b *base[T]) update(fn func(State[T]) State[T]) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	b.state = fn(b.state)
	listeners := append([]func(){}, b.listeners...)
	b.mu.Unlock()

	for _, l := range listeners {
		l()
	}
	return true
}

// apply runs fn only while ctx is live and the control is open.
func (b *base[T]) apply(ctx context.Context, fn func(State[T]) State[T]) bool {
	if ctx.Err() != nil {
		return false
	}
	return b.update(fn)
}

func (b *base[T]) settle() {
	b.update(Settle[T])
}

func (b *base[T]) fail(ctx context.Context, err error, fallbackKey string) {
	msg := b.message(err, fallbackKey)
	level := zap.WarnLevel
	if _, invalid := validation.AsErrors(err); invalid || isCanceled(err) {
		level = zap.DebugLevel
	}
	b.deps.Logger.Log(level, "action failed",
		zap.String("fallback", fallbackKey),
		zap.Int("status", apiclient.StatusCode(err)),
		zap.Error(err),
	)
	b.apply(ctx, func(s State[T]) State[T] { return Fail(s, msg) })
}

func (b *base[T]) alert(titleKey, messageKey string) {
	t := b.deps.Translator
	b.deps.Alerter.Alert(t(titleKey), t(messageKey))
}

// message picks the text stored in State.Err: validation messages, then the server message,
// then the translated fallback.
func (b *base[T]) message(err error, fallbackKey string) string {
	if verrs, ok := validation.AsErrors(err); ok {
		return verrs.Error()
	}
	if msg, ok := apiclient.ServerMessage(err); ok {
		return msg
	}
	return b.deps.Translator(fallbackKey)
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
