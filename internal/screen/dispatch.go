package screen

// Dispatcher offers a selection to its handlers in order until one consumes
// it or fails.
type Dispatcher struct {
	handlers []SelectionHandler
}

// NewDispatcher creates a dispatcher. Nil handlers are skipped.
func NewDispatcher(handlers ...SelectionHandler) *Dispatcher {
	d := &Dispatcher{}
	for _, h := range handlers {
		if h != nil {
			d.handlers = append(d.handlers, h)
		}
	}

	return d
}

// Dispatch returns true once a handler consumed the selection. The first
// handler error stops the chain and is returned as is.
func (d *Dispatcher) Dispatch(action, description string) (bool, error) {
	for _, h := range d.handlers {
		handled, err := h.OnItemSelected(action, description)
		if err != nil {
			return false, err
		}

		if handled {
			return true, nil
		}
	}

	return false, nil
}
