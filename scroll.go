package table

// ScrollEvent carries the body viewport's scroll offsets in pixels.
type ScrollEvent struct {
	Left int
	Top  int
}

// HorizontalScroller is implemented by the sticky header viewport.
type HorizontalScroller interface {
	SetScrollLeft(px int)
}

// ScrollerFunc adapts a function to HorizontalScroller.
type ScrollerFunc func(px int)

// SetScrollLeft calls f(px).
func (f ScrollerFunc) SetScrollLeft(px int) { f(px) }

type scrollState struct {
	header      HorizontalScroller
	left        int
	top         int
	hasVertical bool
}

// SetHeaderScroller registers the header viewport kept in horizontal sync
// with the body.
func (t *Table) SetHeaderScroller(h HorizontalScroller) {
	t.scroll.header = h
	if h != nil {
		h.SetScrollLeft(t.scroll.left)
	}
}

// HandleScroll copies the body's horizontal offset to the header. Vertical
// offsets are recorded but never forwarded: the header does not scroll
// vertically.
func (t *Table) HandleScroll(ev ScrollEvent) {
	t.scroll.top = ev.Top
	if ev.Left == t.scroll.left {
		return
	}
	t.scroll.left = ev.Left
	if t.scroll.header != nil {
		t.scroll.header.SetScrollLeft(ev.Left)
	}
	t.MarkDirty()
}

// ScrollLeft returns the last horizontal body offset.
func (t *Table) ScrollLeft() int {
	return t.scroll.left
}

// ScrollTop returns the last vertical body offset.
func (t *Table) ScrollTop() int {
	return t.scroll.top
}

// SetBodyMetrics reports the body's scrollable and visible heights. A
// vertical scrollbar is shown when the content is taller than the viewport.
func (t *Table) SetBodyMetrics(scrollHeight, clientHeight int) {
	has := scrollHeight > clientHeight
	if has != t.scroll.hasVertical {
		t.scroll.hasVertical = has
		t.MarkDirty()
	}
}

// HasVerticalScrollbar reports the last SetBodyMetrics result.
func (t *Table) HasVerticalScrollbar() bool {
	return t.scroll.hasVertical
}
