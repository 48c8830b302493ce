package rangeslider

import (
	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
)

// ValueChange is delivered to listeners after a drag update.
type ValueChange struct {
	Lower float64
	Upper float64
	// Thumb is the thumb the drag moved.
	Thumb Thumb
}

type listener struct {
	id int
	fn func(ValueChange)
}

// AddListener registers fn to be called after every drag update, including
// updates where clamping left the values unchanged. Host-side setters do not
// notify. Returns an unsubscribe function.
func (c *Controller) AddListener(fn func(ValueChange)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) notify(thumb Thumb) {
	change := ValueChange{Lower: c.lower, Upper: c.upper, Thumb: thumb}
	// Snapshot so listeners may unsubscribe while being notified.
	listeners := append([]listener(nil), c.listeners...)
	for _, l := range listeners {
		c.invoke(l.fn, change)
	}
}

func (c *Controller) invoke(fn func(ValueChange), change ValueChange) {
	defer slidererrors.Recover("rangeslider.notify")
	fn(change)
}

func (c *Controller) markDirty(d Dirty) Dirty {
	c.dirty |= d
	return d
}

// TakeDirty returns the parts marked dirty since the previous call and
// clears the pending set.
func (c *Controller) TakeDirty() Dirty {
	d := c.dirty
	c.dirty = DirtyNone
	return d
}

// PendingDirty returns the pending dirty set without clearing it.
func (c *Controller) PendingDirty() Dirty {
	return c.dirty
}
