package passes

import "fmt"

// DeadlockError is returned when a round of the scheduler's work-list
// finds no pass that can run, meaning the remaining passes' requirements
// can never be satisfied by each other.
type DeadlockError struct {
	Remaining []string
}

func (e *DeadlockError) Error() string {
	return fmt.Sprintf("passes: no scheduled pass can run; remaining: %v", e.Remaining)
}

// Scheduler runs a work-list of passes in round-robin order, running
// whichever one becomes runnable first and removing it from the list, until
// the list is empty or no pass in it can run.
type Scheduler struct {
	program  *Program
	schedule []Pass
}

func NewScheduler(program *Program, schedule []Pass) *Scheduler {
	return &Scheduler{program: program, schedule: schedule}
}

// Schedule appends p to the work-list if it is not already present,
// reporting whether it was added. No pass in this module calls it; the
// work-list is otherwise fixed by NewScheduler.
func (s *Scheduler) Schedule(p Pass) bool {
	for _, existing := range s.schedule {
		if existing == p {
			return false
		}
	}
	s.schedule = append(s.schedule, p)
	return true
}

// RunScheduled drains the work-list, running each pass as soon as it
// becomes runnable. It distinguishes "no pass is runnable yet, try again
// next round" — which cannot happen here since a round always either runs a
// pass or reports deadlock — from "no pass can ever become runnable",
// surfaced as a DeadlockError rather than looping forever.
func (s *Scheduler) RunScheduled() error {
	for len(s.schedule) > 0 {
		ran := false
		for i, p := range s.schedule {
			if p.CanRun(s.program) {
				if err := p.RunPass(s.program); err != nil {
					return err
				}
				s.schedule = append(s.schedule[:i], s.schedule[i+1:]...)
				ran = true
				break
			}
		}
		if !ran {
			remaining := make([]string, len(s.schedule))
			for i, p := range s.schedule {
				remaining[i] = p.Name()
			}
			return &DeadlockError{Remaining: remaining}
		}
	}
	return nil
}
