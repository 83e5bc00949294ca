package board

import "github.com/apex/log"

// DebugMoveValidation traces every rejected move at debug level.
// Move generation tries candidates on clones, so this is noisy; leave it off
// outside of debugging sessions.
var DebugMoveValidation = false

func traceRejected(p *Position, m Move, reason error) {
	if !DebugMoveValidation {
		return
	}
	log.WithFields(log.Fields{
		"move":   m.String(),
		"reason": reason.Error(),
		"fen":    p.ToFEN(),
	}).Debug("move rejected")
}
