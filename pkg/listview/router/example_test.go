package router_test

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/listview/pkg/listview/router"
)

const (
	ScreenFruitList router.Screen = iota
	ScreenFruitDetail
)

type FruitListInput struct {
	Offset float64
}

type FruitListResult struct {
	Selected int
	Offset   float64
	Back     bool
}

type FruitDetailResult struct {
	Back bool
}

var fruits = []string{"apple", "banana", "cherry", "damson"}

func Example() {
	visits := 0

	r := router.New()

	r.Register(ScreenFruitList, func(input any) (any, error) {
		in := input.(FruitListInput)
		visits++
		fmt.Printf("list at offset %.0f\n", in.Offset)
		if visits > 1 {
			return FruitListResult{Back: true}, nil
		}
		return FruitListResult{Selected: 2, Offset: 120}, nil
	})

	r.Register(ScreenFruitDetail, func(input any) (any, error) {
		fmt.Println("detail:", fruits[input.(int)])
		return FruitDetailResult{Back: true}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenFruitList:
			res := result.(FruitListResult)
			if res.Back {
				return router.ScreenExit, nil
			}
			stack.Push(from, FruitListInput{}, res.Offset)
			return ScreenFruitDetail, res.Selected
		case ScreenFruitDetail:
			entry := stack.Pop()
			if entry == nil {
				return router.ScreenExit, nil
			}
			return entry.Screen, FruitListInput{Offset: entry.Resume.(float64)}
		}
		return router.ScreenExit, nil
	})

	if err := r.Run(ScreenFruitList, FruitListInput{}); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// list at offset 0
	// detail: cherry
	// list at offset 120
}

var errClosed = errors.New("window closed")

func ExampleRouter_ExitOn() {
	r := router.New().ExitOn(errClosed)

	r.Register(ScreenFruitList, func(input any) (any, error) {
		return nil, fmt.Errorf("list: %w", errClosed)
	})
	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		return router.ScreenExit, nil
	})

	fmt.Println(r.Run(ScreenFruitList, nil))

	// Output:
	// <nil>
}

func ExampleStack_Unwind() {
	s := router.NewStack()
	s.Push(ScreenFruitList, FruitListInput{}, 40.0)
	s.Push(ScreenFruitDetail, 1, nil)
	s.Push(ScreenFruitDetail, 3, nil)

	entry := s.Unwind(ScreenFruitList)
	fmt.Println(entry.Screen == ScreenFruitList, entry.Resume, s.Len())

	// Output:
	// true 40 0
}
