package router

// StackEntry is a screen to come back to: the input it ran with and the
// state it handed back, such as a list's scroll offset.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack is the back-navigation history.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records a screen before navigating away from it.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes and returns the most recent entry, or nil if there is none.
func (s *Stack) Pop() *StackEntry {
	entry := s.Peek()
	if entry != nil {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return entry
}

// Peek returns a copy of the most recent entry without removing it.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	return &entry
}

// Unwind pops entries until screen is on top and returns it,
// or empties the stack and returns nil when screen is not present.
func (s *Stack) Unwind(screen Screen) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	s.entries = s.entries[:0]
	return nil
}

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }

func (s *Stack) Len() int { return len(s.entries) }

func (s *Stack) Clear() { s.entries = s.entries[:0] }
