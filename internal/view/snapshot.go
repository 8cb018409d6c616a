package view

import (
	"sync"

	"github.com/amaumene/moviemood/internal/controller"
)

// Frame is the latest rendered state.
type Frame struct {
	Active  controller.Selection   `json:"active"`
	Grid    controller.GridState   `json:"grid"`
	Detail  controller.DetailState `json:"detail"`
	Renders uint64                 `json:"renders"`
}

// Snapshot keeps the most recent state passed to each View method.
type Snapshot struct {
	mu    sync.RWMutex
	frame Frame
}

func NewSnapshot() *Snapshot {
	return &Snapshot{frame: Frame{
		Active: controller.None(),
		Grid:   controller.GridState{Phase: controller.PhaseIdle, Selection: controller.None()},
		Detail: controller.DetailState{Phase: controller.DetailClosed},
	}}
}

func (s *Snapshot) SetActive(sel controller.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Active = sel
	s.frame.Renders++
}

func (s *Snapshot) ShowGrid(state controller.GridState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Grid = state
	s.frame.Renders++
}

func (s *Snapshot) ShowDetail(state controller.DetailState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Detail = state
	s.frame.Renders++
}

// Current returns a copy of the latest frame.
func (s *Snapshot) Current() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}
