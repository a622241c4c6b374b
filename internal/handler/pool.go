package handler

import (
	"bytes"
	"sync"
)

// Response buffer sizing. Leaderboards and full fight cards are the largest
// payloads we serve; 4KB holds a typical card without regrowing.
const (
	responseBufferSize    = 4 * 1024
	responseBufferMaxKeep = 32 * 1024
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool. Buffers that grew
// far past the default are dropped so one oversized leaderboard response does
// not pin memory for the life of the pool.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > responseBufferMaxKeep {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
