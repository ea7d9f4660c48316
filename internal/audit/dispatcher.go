package audit

import "log"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

// NewNop returns a dispatcher that discards every event, for contexts
// where auditing is not configured. No worker is started.
func NewNop() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d.queue == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// full queue drops the event; audit never blocks the API
		log.Println("audit queue full, dropping event")
	}
}
