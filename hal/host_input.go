package hal

type hostInput struct {
	ch chan Event
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Event, 64)}
}

func (in *hostInput) Events() <-chan Event { return in.ch }

// push delivers ev without blocking; events are dropped when the consumer
// falls behind.
func (in *hostInput) push(ev Event) {
	select {
	case in.ch <- ev:
	default:
	}
}

func (in *hostInput) pushKey(code KeyCode, press bool) {
	in.push(Event{Kind: EventKey, Key: code, Press: press})
}

func (in *hostInput) pushResize(width, height int) {
	in.push(Event{Kind: EventResize, Width: width, Height: height})
}

func (in *hostInput) pushQuit() {
	in.push(Event{Kind: EventQuit})
}
