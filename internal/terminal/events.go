package terminal

import "github.com/gdamore/tcell/v2"

type redrawEvent struct {
	tcell.EventTime
}

func newRedrawEvent() *redrawEvent {
	ev := &redrawEvent{}
	ev.SetEventNow()
	return ev
}

type quitEvent struct {
	tcell.EventTime
}

func newQuitEvent() *quitEvent {
	ev := &quitEvent{}
	ev.SetEventNow()
	return ev
}
