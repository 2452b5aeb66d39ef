package memory

// scalarTarget resolves the frame that a new scalar of the given byte
// width would live in, without mutating anything.
func (m *Model) scalarTarget(width int) (int, error) {
	idx := m.currentFrame()
	if idx == -1 {
		return -1, ErrNoActiveFrame
	}
	if m.frames[idx].size+width > m.limits.MaxFrameSize {
		return -1, ErrFrameFull
	}
	return idx, nil
}

// charge books a scalar's byte width onto the frame and the global
// stack counter. Both must move together.
func (m *Model) charge(idx, width int) {
	m.frames[idx].size += width
	m.stackUsed += width
}

// CreateInt stores a named integer in the current frame, charging 4
// bytes against the frame and the stack budget.
func (m *Model) CreateInt(name string, value int32) error {
	idx, err := m.scalarTarget(intWidth)
	if err != nil {
		return err
	}
	f := &m.frames[idx]
	for i := range f.ints {
		if f.ints[i].initialized {
			continue
		}
		f.ints[i] = intSlot{
			name:        truncateName(name, MaxNameLen),
			value:       value,
			initialized: true,
		}
		m.charge(idx, intWidth)
		return nil
	}
	return ErrKindCapacityExceeded
}

// CreateDouble stores a named double in the current frame, charging 8
// bytes against the frame and the stack budget.
func (m *Model) CreateDouble(name string, value float64) error {
	idx, err := m.scalarTarget(doubleWidth)
	if err != nil {
		return err
	}
	f := &m.frames[idx]
	for i := range f.doubles {
		if f.doubles[i].initialized {
			continue
		}
		f.doubles[i] = doubleSlot{
			name:        truncateName(name, MaxNameLen),
			value:       value,
			initialized: true,
		}
		m.charge(idx, doubleWidth)
		return nil
	}
	return ErrKindCapacityExceeded
}

// CreateChar stores a named character in the current frame, charging 1
// byte against the frame and the stack budget.
func (m *Model) CreateChar(name string, value byte) error {
	idx, err := m.scalarTarget(charWidth)
	if err != nil {
		return err
	}
	f := &m.frames[idx]
	for i := range f.chars {
		if f.chars[i].initialized {
			continue
		}
		f.chars[i] = charSlot{
			name:        truncateName(name, MaxNameLen),
			value:       value,
			initialized: true,
		}
		m.charge(idx, charWidth)
		return nil
	}
	return ErrKindCapacityExceeded
}
