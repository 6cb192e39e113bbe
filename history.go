package termline

// endOfRecords marks the slot after the newest history record. Stored
// records always have a non-zero length prefix, so a zero length byte ends
// every walk over the ring.
const endOfRecords = 0

type histDir int

const (
	histUp histDir = iota
	histDown
)

// ringHistory stores submitted lines back to back in a fixed circular byte
// buffer as [len][payload] records. Records are evicted whole from the
// oldest end when space runs out. begin indexes the length byte of the
// oldest record, end the terminator slot after the newest; cur counts how
// far Up-navigation has walked back from the newest record.
type ringHistory struct {
	buf   []byte
	begin int
	end   int
	cur   int
}

func (h *ringHistory) init(size int) {
	h.buf = make([]byte, size)
}

func (h *ringHistory) wrap(i int) int {
	if i >= len(h.buf) {
		return i - len(h.buf)
	}
	return i
}

// recLen returns the length prefix of the record starting at off.
func (h *ringHistory) recLen(off int) int {
	return int(h.buf[off])
}

// evictOldest advances begin past the oldest record.
func (h *ringHistory) evictOldest() {
	h.begin = h.wrap(h.begin + h.recLen(h.begin) + 1)
}

// hasRoom reports whether an n-byte record fits without eviction. One slot
// always stays free for the terminator.
func (h *ringHistory) hasRoom(n int) bool {
	if h.recLen(h.begin) == endOfRecords {
		return true
	}
	if h.end >= h.begin {
		return len(h.buf)-h.end+h.begin-1 > n
	}
	return h.begin-h.end-1 > n
}

// save appends line as the newest record, evicting oldest records until it
// fits, and resets navigation. Lines longer than capacity-2 are rejected.
func (h *ringHistory) save(line []byte) {
	if len(line) > len(h.buf)-2 {
		return
	}
	for !h.hasRoom(len(line)) {
		h.evictOldest()
	}

	first := len(h.buf) - h.end - 1
	if first > len(line) {
		first = len(line)
	}
	copy(h.buf[h.end+1:], line[:first])
	copy(h.buf, line[first:])

	h.buf[h.end] = byte(len(line))
	h.end = h.wrap(h.end + len(line) + 1)
	h.buf[h.end] = endOfRecords
	h.cur = 0
}

// count walks the ring and returns the number of stored records.
func (h *ringHistory) count() int {
	n := 0
	for off := h.begin; h.recLen(off) != endOfRecords; n++ {
		off = h.wrap(off + h.recLen(off) + 1)
	}
	return n
}

// recordAt returns the offset of the length byte of the idx'th record,
// counted from the oldest.
func (h *ringHistory) recordAt(idx int) int {
	off := h.begin
	for ; idx > 0; idx-- {
		off = h.wrap(off + h.recLen(off) + 1)
	}
	return off
}

// copyOut copies the payload of the record at off into dst, splitting the
// copy at the wrap boundary when needed, and returns its length.
func (h *ringHistory) copyOut(off int, dst []byte) int {
	n := h.recLen(off)
	first := len(h.buf) - off - 1
	if first > n {
		first = n
	}
	copy(dst, h.buf[off+1:off+1+first])
	copy(dst[first:], h.buf[:n-first])
	return n
}

// restore copies the record selected by one Up or Down step into dst and
// returns its length. Up past the oldest record reports failure and leaves
// navigation put; Down past the newest succeeds with an empty line.
func (h *ringHistory) restore(dir histDir, dst []byte) (int, bool) {
	total := h.count()
	if dir == histUp {
		if h.cur >= total {
			return 0, false
		}
		off := h.recordAt(total - h.cur - 1)
		h.cur++
		return h.copyOut(off, dst), true
	}
	if h.cur == 0 {
		return 0, true
	}
	h.cur--
	if h.cur == 0 {
		return 0, true
	}
	return h.copyOut(h.recordAt(total-h.cur), dst), true
}

// histNavigate replaces the live line with the history neighbor in dir and
// redraws. History is only reachable while echo is fully on, so masked or
// silent input can neither read nor be replaced by stored lines.
func (s *Session) histNavigate(dir histDir) {
	if !s.cfg.UseHistory || s.echo != EchoOn {
		return
	}
	n, ok := s.hist.restore(dir, s.buf)
	if !ok {
		return
	}
	s.cmdlen = n
	s.cursor = n
	s.buf[n] = 0
	s.printLine(0, true)
}
