package lasso

// ModifierSignal reports whether the lasso modifier is held right now.
type ModifierSignal interface {
	Active() bool
}

// Enabled decides lasso mode. With always set the modifier switches back to
// rectangle selection; without it the modifier switches to lasso.
func Enabled(always, modifier bool) bool {
	if always {
		return !modifier
	}
	return modifier
}

// KeyPoller answers whether a raw key code is currently down.
type KeyPoller func(code uint16) bool

// PolledKeys polls a primary key code and an optional secondary one.
// A zero Secondary means there is no alternative key.
type PolledKeys struct {
	Poll      KeyPoller
	Primary   uint16
	Secondary uint16
}

func (k PolledKeys) Active() bool {
	if k.Poll == nil {
		return false
	}
	if k.Poll(k.Primary) {
		return true
	}
	return k.Secondary != 0 && k.Poll(k.Secondary)
}

// Touch is the signal for touch screens, which have no modifier keys. It
// always reports active, so the lasso-always setting alone decides the mode,
// inverted.
type Touch struct{}

func (Touch) Active() bool { return true }

// Binding follows press and release events of a bound input action.
type Binding struct {
	down bool
}

func (b *Binding) Press()        { b.down = true }
func (b *Binding) Release()      { b.down = false }
func (b *Binding) Set(down bool) { b.down = down }
func (b *Binding) Active() bool  { return b.down }
