package ansi

import (
	"time"

	"golang.org/x/sys/unix"
)

// reader turns raw terminal bytes into the numeric codes the decoder
// consumes. Printable and UTF-8 bytes pass through one code per byte,
// always as a complete sequence, so the decoder can pull continuation
// bytes without blocking.
type reader struct {
	fd          int
	escapeDelay time.Duration
	codes       chan<- int
	stopCh      chan struct{}
	doneCh      chan struct{}

	// Stream assembly buffer; partial sequences wait here for the
	// next read
	buf []byte
}

func newReader(fd int, escapeDelay time.Duration, codes chan<- int) *reader {
	return &reader{
		fd:          fd,
		escapeDelay: escapeDelay,
		codes:       codes,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		buf:         make([]byte, 0, 256),
	}
}

func (r *reader) start() {
	go r.loop()
}

func (r *reader) stop() {
	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(200 * time.Millisecond):
		// Stuck in a blocking read, proceed anyway
	}
}

func (r *reader) loop() {
	defer close(r.doneCh)

	raw := make([]byte, 256)
	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		// A pending lone ESC shortens the poll so it can resolve to a
		// standalone Escape key
		timeout := 100
		if len(r.buf) > 0 && r.buf[0] == 0x1b {
			timeout = int(r.escapeDelay / time.Millisecond)
			if timeout < 1 {
				timeout = 1
			}
		}

		fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}

		if n == 0 {
			// Timeout: whatever is buffered will not grow into a
			// longer sequence
			if len(r.buf) > 0 && r.buf[0] == 0x1b {
				r.emit(27)
				r.consume(1)
				r.parse()
			}
			continue
		}

		rn, err := unix.Read(r.fd, raw)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return
		}
		if rn == 0 {
			return
		}

		r.buf = append(r.buf, raw[:rn]...)
		r.parse()
	}
}

// parse drains every complete token from the buffer
func (r *reader) parse() {
	i := 0
	n := len(r.buf)

	for i < n {
		b := r.buf[i]

		if b == 0x1b {
			if i+1 >= n {
				break // Lone ESC, wait for the escape delay
			}
			if r.buf[i+1] == 0x1b {
				// ESC ESC resolves to one standalone Escape
				r.emit(27)
				i += 2
				continue
			}
			consumed, code, ok := parseSequence(r.buf[i:])
			if consumed == 0 {
				if n-i > 16 {
					// Unterminated garbage, drop the ESC and rescan
					i++
					continue
				}
				break
			}
			if ok {
				r.emit(code)
			}
			i += consumed
			continue
		}

		if b < 0x80 {
			r.emit(int(b))
			i++
			continue
		}

		// UTF-8: only release the lead once every continuation byte
		// is buffered, the decoder reads them back to back
		size := utf8Len(b)
		if size == 0 {
			i++ // Stray continuation byte
			continue
		}
		if i+size > n {
			break
		}
		for j := 0; j < size; j++ {
			r.emit(int(r.buf[i+j]))
		}
		i += size
	}

	r.consume(i)
}

func (r *reader) consume(n int) {
	if n <= 0 {
		return
	}
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}

func (r *reader) emit(code int) {
	select {
	case r.codes <- code:
	case <-r.stopCh:
	}
}

// utf8Len returns the sequence length for a lead byte, 0 if invalid
func utf8Len(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}
