package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512
	// maxPooledBufferSize keeps one large shelf listing from pinning memory
	maxPooledBufferSize = 64 << 10
)

// bufferPool holds the buffers respondJSON encodes into
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
