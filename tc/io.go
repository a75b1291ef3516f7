package tc

// FireStart applies each queued edge's start value via the given sinks, once
// per segment, on the cycle the segment first becomes active. Subsequent
// calls are no-ops.
func (s *Segment) FireStart(dout func(index int, on bool), aout func(index int, value float64)) {
	if s.dioFired {
		return
	}
	s.dioFired = true
	for _, e := range s.SyncDIO {
		if e.Start < 0 {
			continue
		}
		dout(e.Index, e.Start != 0)
	}
	for _, e := range s.SyncAIO {
		if !e.HasStart {
			continue
		}
		aout(e.Index, e.Start)
	}
}

// FireEnd applies each queued edge's end value via the given sinks, called
// once when the segment is removed from the queue.
func (s *Segment) FireEnd(dout func(index int, on bool), aout func(index int, value float64)) {
	for _, e := range s.SyncDIO {
		if e.End < 0 {
			continue
		}
		dout(e.Index, e.End != 0)
	}
	for _, e := range s.SyncAIO {
		if !e.HasEnd {
			continue
		}
		aout(e.Index, e.End)
	}
}
