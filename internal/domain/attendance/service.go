// Package attendance owns the only runtime mutation in the system: the
// per-employee check-in/check-out presence state. State is in-memory,
// seeded from fixtures, and lost on restart by design.
package attendance

import (
	"errors"
	"sync"
	"time"

	"workpulse/internal/domain/directory"
)

var ErrUnknownEmployee = errors.New("attendance: unknown employee")

const timeLayout = "15:04"

type Status struct {
	EmployeeID   string `json:"employeeId"`
	IsCheckedIn  bool   `json:"isCheckedIn"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

type Service struct {
	mu    sync.RWMutex
	state map[string]Status
	now   func() time.Time
}

// NewService seeds presence state from the fixture employees. A nil clock
// defaults to wall time; tests inject their own.
func NewService(employees []directory.Employee, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	state := make(map[string]Status, len(employees))
	for _, emp := range employees {
		state[emp.ID] = Status{
			EmployeeID:   emp.ID,
			IsCheckedIn:  emp.IsCheckedIn,
			CheckInTime:  emp.CheckInTime,
			CheckOutTime: emp.CheckOutTime,
		}
	}
	return &Service{state: state, now: clock}
}

func (s *Service) Status(employeeID string) (Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.state[employeeID]
	return st, ok
}

// CheckIn transitions to Checked-In, stamping checkInTime and clearing any
// previous checkOutTime. Calling it while already checked in is a no-op
// beyond refreshing the stamp; the outcome is the same state.
func (s *Service) CheckIn(employeeID string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state[employeeID]
	if !ok {
		return Status{}, ErrUnknownEmployee
	}
	st.IsCheckedIn = true
	st.CheckInTime = s.now().Format(timeLayout)
	st.CheckOutTime = ""
	s.state[employeeID] = st
	return st, nil
}

// CheckOut transitions to Checked-Out, stamping checkOutTime.
func (s *Service) CheckOut(employeeID string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state[employeeID]
	if !ok {
		return Status{}, ErrUnknownEmployee
	}
	st.IsCheckedIn = false
	st.CheckOutTime = s.now().Format(timeLayout)
	s.state[employeeID] = st
	return st, nil
}

// Overlay returns the employee with live presence state applied over the
// fixture snapshot.
func (s *Service) Overlay(emp directory.Employee) directory.Employee {
	if st, ok := s.Status(emp.ID); ok {
		emp.IsCheckedIn = st.IsCheckedIn
		emp.CheckInTime = st.CheckInTime
		emp.CheckOutTime = st.CheckOutTime
	}
	return emp
}

// OverlayAll applies live presence state to a slice of employees.
func (s *Service) OverlayAll(employees []directory.Employee) []directory.Employee {
	out := make([]directory.Employee, len(employees))
	for i, emp := range employees {
		out[i] = s.Overlay(emp)
	}
	return out
}
