package view

// DispatchResult summarizes one tick's worth of events.
type DispatchResult struct {
	Close   bool // a close request was seen
	Changed bool // the selected game differs from the one before the tick
}

// Dispatch applies events to nv in order. Clicks are resolved against the
// layout's buttons first; clicks elsewhere do nothing. Events after a close
// request are dropped.
func Dispatch(events []Event, nv *Navigator, layout Layout) DispatchResult {
	var res DispatchResult
	start := nv.Current()

drain:
	for _, ev := range events {
		switch ev.Kind {
		case EventClose:
			res.Close = true
			break drain
		case EventClick:
			kind, ok := layout.ResolveClick(ev.X, ev.Y)
			if !ok {
				continue
			}
			ev = Event{Kind: kind}
		}

		nv.Apply(ev)
	}

	res.Changed = nv.Current() != start
	return res
}
