package interaction

// PointerHandler receives pointer events routed from a document-wide scope.
type PointerHandler interface {
	PointerMove(x float64)
	PointerRelease()
}

// ListenerScope is where an active session registers its move and release
// listeners. A controller attaches on leaving Idle and detaches on return.
type ListenerScope interface {
	Attach(h PointerHandler)
	Detach(h PointerHandler)
}

// DocumentScope routes global pointer events to whichever handlers are
// attached. It is driven from a single event loop and is not safe for
// concurrent use.
type DocumentScope struct {
	handlers []PointerHandler
}

func NewDocumentScope() *DocumentScope {
	return &DocumentScope{}
}

func (s *DocumentScope) Attach(h PointerHandler) {
	for _, existing := range s.handlers {
		if existing == h {
			return
		}
	}
	s.handlers = append(s.handlers, h)
}

func (s *DocumentScope) Detach(h PointerHandler) {
	for i, existing := range s.handlers {
		if existing == h {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Attached returns how many handlers are listening.
func (s *DocumentScope) Attached() int {
	return len(s.handlers)
}

// DispatchMove forwards a pointer move to every attached handler.
func (s *DocumentScope) DispatchMove(x float64) {
	for _, h := range s.snapshot() {
		h.PointerMove(x)
	}
}

// DispatchRelease forwards a pointer release. Handlers detach themselves
// while this runs, so it iterates over a snapshot.
func (s *DocumentScope) DispatchRelease() {
	for _, h := range s.snapshot() {
		h.PointerRelease()
	}
}

func (s *DocumentScope) snapshot() []PointerHandler {
	out := make([]PointerHandler, len(s.handlers))
	copy(out, s.handlers)
	return out
}

// SessionOwner grants the right to run a drag session to one item at a time.
// Controllers sharing an owner cannot run overlapping sessions even when
// several pointers are down.
type SessionOwner struct {
	holder string
	held   bool
}

func NewSessionOwner() *SessionOwner {
	return &SessionOwner{}
}

// Acquire claims the owner for itemID. It fails while any session is held,
// including one for the same item.
func (o *SessionOwner) Acquire(itemID string) bool {
	if o.held {
		return false
	}
	o.holder = itemID
	o.held = true
	return true
}

// Release gives the owner back if itemID holds it.
func (o *SessionOwner) Release(itemID string) {
	if o.held && o.holder == itemID {
		o.holder = ""
		o.held = false
	}
}

// Holder returns the item currently holding the owner.
func (o *SessionOwner) Holder() (string, bool) {
	return o.holder, o.held
}
