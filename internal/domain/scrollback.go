package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChunkMax is the maximum byte size of a single scrollback chunk. Only the
// chunk with the highest index may be smaller than this, and only it may
// grow on a subsequent append.
const ChunkMax = 65536

// ScrollbackChunk is one append-only slice of a session's byte-transparent
// output history.
type ScrollbackChunk struct {
	ID         int64
	SessionID  uuid.UUID
	ChunkIndex int32
	Data       []byte
	CreatedAt  time.Time
}
