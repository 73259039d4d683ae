// Package router moves between screens that each own a scene.
//
// Each screen is a function from an input to a result. A single transition
// function looks at the finished screen and its result and picks the next
// screen, so all navigation lives in one place.
//
// # List and detail
//
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenDetail
//	)
//
//	type ListInput struct {
//	    Offset float64 // scroll offset to restore, 0 when fresh
//	}
//
//	type ListResult struct {
//	    Selected int
//	    Offset   float64
//	    Back     bool
//	}
//
//	r := router.New().ExitOn(listview.ErrQuit)
//	r.Register(ScreenList, runList).Register(ScreenDetail, runDetail)
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenList:
//	        res := result.(ListResult)
//	        if res.Back {
//	            return router.ScreenExit, nil
//	        }
//	        stack.Push(from, ListInput{}, res.Offset)
//	        return ScreenDetail, res.Selected
//	    case ScreenDetail:
//	        entry := stack.Pop()
//	        return entry.Screen, ListInput{Offset: entry.Resume.(float64)}
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenList, ListInput{})
//
// # Resume state
//
// A list screen hands back its ScrollOffset when it navigates away. The
// transition function stores it on the stack with Push and gives it back
// through the input after Pop, and the screen calls ScrollTo with it once
// its items are added.
package router
