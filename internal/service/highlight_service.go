package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/pkg/communication"
)

// superChatLister is the slice of the backend client the highlight
// service needs.
type superChatLister interface {
	ListSuperChats(ctx context.Context) ([]communication.SuperChatHighlightDtoResponse, error)
}

// HighlightService keeps a snapshot of the ranked paid highlights by
// polling the backend on a fixed cadence. Highlights live next to the
// chat: they are never merged into the message log.
type HighlightService interface {
	Start()
	Stop()

	Highlights() []communication.SuperChatHighlightDtoResponse
}

const defaultHighlightPollInterval = 30 * time.Second

type highlightServiceImpl struct {
	backend      superChatLister
	pollInterval time.Duration
	log          logger.Logger

	lock       sync.RWMutex
	highlights []communication.SuperChatHighlightDtoResponse

	running atomic.Bool
	quit    chan struct{}
	wg      sync.WaitGroup
}

func NewHighlightService(
	backend superChatLister, pollInterval time.Duration, log logger.Logger,
) HighlightService {
	if pollInterval <= 0 {
		pollInterval = defaultHighlightPollInterval
	}

	return &highlightServiceImpl{
		backend:      backend,
		pollInterval: pollInterval,
		log:          log,
		quit:         make(chan struct{}, 1),
	}
}

func (s *highlightServiceImpl) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	s.wg.Add(1)

	go s.activeLoop()
}

func (s *highlightServiceImpl) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	s.quit <- struct{}{}
	s.wg.Wait()
}

func (s *highlightServiceImpl) Highlights() []communication.SuperChatHighlightDtoResponse {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]communication.SuperChatHighlightDtoResponse, len(s.highlights))
	copy(out, s.highlights)

	return out
}

func (s *highlightServiceImpl) activeLoop() {
	defer s.wg.Done()

	s.refresh()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	running := true
	for running {
		select {
		case <-s.quit:
			running = false
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *highlightServiceImpl) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.pollInterval)
	defer cancel()

	highlights, err := s.backend.ListSuperChats(ctx)
	if err != nil {
		// A failed refresh keeps the previous snapshot: stale
		// highlights beat an empty panel.
		s.log.Warnf("Failed to refresh superchat highlights: %v", err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.highlights = highlights
}
