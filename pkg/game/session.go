package game

import (
	"log"

	"github.com/gonewx/stroll/pkg/components"
	"github.com/gonewx/stroll/pkg/config"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	// PhaseReady is the initial state before play begins.
	PhaseReady Phase = iota
	// PhasePlaying is the active simulation.
	PhasePlaying
	// PhaseEnded is the terminal state after the win condition.
	PhaseEnded
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// eventKind identifies a scheduled session event.
type eventKind int

const (
	eventClearMessage eventKind = iota
	eventEndSession
)

// scheduledEvent is a pending effect evaluated against the session clock.
// Keeping these as records (instead of time.AfterFunc) lets Restart cancel
// everything deterministically and keeps evaluation on the frame boundary.
type scheduledEvent struct {
	at   float64
	kind eventKind
}

// Snapshot is the read-only view handed to UI/HUD subscribers.
type Snapshot struct {
	Phase        Phase
	Score        int
	Collected    []components.CollectibleComponent
	Message      string
	MessageTitle string
}

// Session owns all shared mutable progress state: phase, score, the ordered
// collected set and the transient message. Systems receive it by injection;
// there is no package-level instance. All mutations go through its methods
// so the render path stays read-only.
type Session struct {
	phase Phase
	score int

	collected    []components.CollectibleComponent // insertion order = pickup order
	collectedIDs map[string]bool
	totalItems   int

	message      string
	messageTitle string

	// Camera offset shared between the camera system (writer) and the
	// render system (reader); reset to 0 on restart.
	cameraX float64

	now    float64 // accumulated session clock in seconds
	events []scheduledEvent

	subscribers []func(Snapshot)
}

// NewSession creates a session in the ready phase. totalItems is the number
// of collectibles in the level table; the win condition is collecting all
// of them.
func NewSession(totalItems int) *Session {
	return &Session{
		phase:        PhaseReady,
		collectedIDs: make(map[string]bool),
		totalItems:   totalItems,
	}
}

// Start moves the session from ready to playing. Calling Start in any other
// phase is ignored.
func (s *Session) Start() {
	if s.phase != PhaseReady {
		return
	}
	s.phase = PhasePlaying
	log.Printf("[Session] phase ready -> playing")
	s.notify()
}

// Restart resets the session to its initial state from any phase: score 0,
// empty collected set, no message, camera at 0, all pending events
// cancelled. Idempotent: repeated calls yield the same state.
func (s *Session) Restart() {
	s.phase = PhaseReady
	s.score = 0
	s.collected = nil
	s.collectedIDs = make(map[string]bool)
	s.message = ""
	s.messageTitle = ""
	s.cameraX = 0
	s.now = 0
	s.events = nil
	log.Printf("[Session] restart -> ready")
	s.notify()
}

// Advance moves the session clock forward and fires due scheduled events.
// Called exactly once per simulation tick.
func (s *Session) Advance(dt float64) {
	s.now += dt

	fired := false
	remaining := s.events[:0]
	for _, ev := range s.events {
		if ev.at > s.now {
			remaining = append(remaining, ev)
			continue
		}
		switch ev.kind {
		case eventClearMessage:
			s.message = ""
			s.messageTitle = ""
		case eventEndSession:
			if s.phase == PhasePlaying {
				s.phase = PhaseEnded
				log.Printf("[Session] phase playing -> ended")
			}
		}
		fired = true
	}
	s.events = remaining
	if fired {
		s.notify()
	}
}

// Collect records a pickup. Returns false if the session is not playing or
// the id was already collected; each id is accepted at most once per
// session. On the final pickup the congratulation is shown and the ended
// transition is scheduled.
func (s *Session) Collect(c components.CollectibleComponent) bool {
	if s.phase != PhasePlaying {
		return false
	}
	if s.collectedIDs[c.ID] {
		return false
	}

	s.collectedIDs[c.ID] = true
	s.collected = append(s.collected, c)
	s.score += c.Points
	s.messageTitle = c.Title
	s.message = c.Message

	// A new pickup overwrites the previous message and its clear timer.
	s.cancelEvents(eventClearMessage)
	s.schedule(eventClearMessage, config.MessageDuration)

	log.Printf("[Session] collected %q (%d/%d), score=%d", c.ID, len(s.collected), s.totalItems, s.score)

	if s.totalItems > 0 && len(s.collected) == s.totalItems {
		s.messageTitle = "That's everything!"
		s.message = "Thanks for walking with me. You know the whole story now."
		s.cancelEvents(eventClearMessage)
		s.schedule(eventEndSession, config.EndGameDelay)
		log.Printf("[Session] all %d collectibles found, ending in %.0fs", s.totalItems, config.EndGameDelay)
	}

	s.notify()
	return true
}

// DismissMessage clears the current message before its auto-clear delay.
func (s *Session) DismissMessage() {
	if s.message == "" && s.messageTitle == "" {
		return
	}
	s.message = ""
	s.messageTitle = ""
	s.cancelEvents(eventClearMessage)
	s.notify()
}

// Subscribe registers a UI/HUD observer. The callback receives a snapshot
// immediately and again after every state change.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.subscribers = append(s.subscribers, fn)
	fn(s.SnapshotNow())
}

// SnapshotNow returns a copy of the observable state.
func (s *Session) SnapshotNow() Snapshot {
	collected := make([]components.CollectibleComponent, len(s.collected))
	copy(collected, s.collected)
	return Snapshot{
		Phase:        s.phase,
		Score:        s.score,
		Collected:    collected,
		Message:      s.message,
		MessageTitle: s.messageTitle,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// CollectedCount returns how many collectibles were picked up.
func (s *Session) CollectedCount() int { return len(s.collected) }

// TotalItems returns the size of the level's collectible table.
func (s *Session) TotalItems() int { return s.totalItems }

// IsCollected reports whether the id was already picked up this session.
func (s *Session) IsCollected(id string) bool { return s.collectedIDs[id] }

// Message returns the transient message card, empty strings when none.
func (s *Session) Message() (title, text string) {
	return s.messageTitle, s.message
}

// CameraX returns the shared camera offset.
func (s *Session) CameraX() float64 { return s.cameraX }

// SetCameraX stores the camera offset computed by the camera system.
func (s *Session) SetCameraX(x float64) { s.cameraX = x }

// Now returns the session clock in seconds since the last restart.
func (s *Session) Now() float64 { return s.now }

func (s *Session) schedule(kind eventKind, delay float64) {
	s.events = append(s.events, scheduledEvent{at: s.now + delay, kind: kind})
}

func (s *Session) cancelEvents(kind eventKind) {
	remaining := s.events[:0]
	for _, ev := range s.events {
		if ev.kind != kind {
			remaining = append(remaining, ev)
		}
	}
	s.events = remaining
}

func (s *Session) notify() {
	if len(s.subscribers) == 0 {
		return
	}
	snap := s.SnapshotNow()
	for _, fn := range s.subscribers {
		fn(snap)
	}
}
