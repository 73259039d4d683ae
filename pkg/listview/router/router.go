package router

import (
	"errors"
	"fmt"
)

// Screen identifies a screen. Applications define their own constants.
type Screen int

// ScreenExit is returned by a TransitionFunc to stop the router.
const ScreenExit Screen = -1

// ScreenFunc runs a screen to completion and returns its result.
// A screen usually builds a scene, runs its loop and destroys the scene
// before returning, so nothing it created outlives it.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc picks the next screen from the one that just finished.
// Push onto stack before moving forward and Pop to come back.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// Router runs screens one after another.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
	exitOn     []error
}

func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the function that decides where to go next.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// ExitOn makes Run return nil when a screen fails with one of errs,
// for errors that mean "stop" rather than "broken", like a closed window.
func (r *Router) ExitOn(errs ...error) *Router {
	r.exitOn = append(r.exitOn, errs...)
	return r
}

// Run starts at screen start with input and keeps going until the
// transition function returns ScreenExit or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current, currentInput := start, input

	for current != ScreenExit {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := fn(currentInput)
		if err != nil {
			if r.isExit(err) {
				return nil
			}
			return fmt.Errorf("router: screen %d error: %w", current, err)
		}

		current, currentInput = r.transition(current, result, r.stack)
	}

	return nil
}

func (r *Router) isExit(err error) bool {
	for _, target := range r.exitOn {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Stack returns the back-navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}
