// Package remote replays the collaborative drawing line protocol against a
// local coloring session.
//
// The protocol is line based, one message per line:
//
//	HELLO user room
//	DRAW phase x y colorHex width
//	CHAT text
//	LEAVE
//
// Only DRAW lines affect the session. Each one becomes an ordinary
// PointerEvent, applied in the order the lines are read; width is the
// brush diameter. Broadcasting strokes is left to the host.
package remote
