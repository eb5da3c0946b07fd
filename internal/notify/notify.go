// Package notify carries human-readable status messages from the room
// service to whoever wants to present them. Notifiers are purely
// observational; they never feed back into state.
package notify

import "log"

type Notifier interface {
	Notify(title, description string)
}

// Func adapts a plain function to the Notifier interface, the same way
// http.HandlerFunc adapts handlers.
type Func func(title, description string)

func (f Func) Notify(title, description string) {
	f(title, description)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(title, description string) {
	log.Printf("notify: %s: %s", title, description)
}

// Hub fans a notification out to every registered notifier. The UI
// registers its status bar after startup, alongside the log notifier
// wired in main.
type Hub struct {
	notifiers []Notifier
}

func NewHub(notifiers ...Notifier) *Hub {
	return &Hub{notifiers: notifiers}
}

func (h *Hub) Register(n Notifier) {
	h.notifiers = append(h.notifiers, n)
}

func (h *Hub) Notify(title, description string) {
	for _, n := range h.notifiers {
		n.Notify(title, description)
	}
}
