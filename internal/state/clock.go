package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	sessionID = uuid.NewString()
	strokeSeq uint64
)

// SessionID identifies this run of the program in logs.
func SessionID() string { return sessionID }

// NextStrokeID returns a log correlation id for a new stroke.
func NextStrokeID() string {
	return fmt.Sprintf("%s-%d", sessionID[:8], atomic.AddUint64(&strokeSeq, 1))
}
