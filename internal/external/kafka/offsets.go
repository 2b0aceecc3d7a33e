package cloudz

import "sync"

// offsetTracker ведет полученные и обработанные offset по партициям.
// Коммитить можно только offset, до которого обработано все полученное
type offsetTracker struct {
	mu         sync.Mutex
	partitions map[int]*partitionOffsets
}

type partitionOffsets struct {
	// полученные и еще не закоммиченные, по возрастанию
	pending []int64
	done    map[int64]struct{}
}

func newOffsetTracker() *offsetTracker {
	return &offsetTracker{partitions: make(map[int]*partitionOffsets)}
}

func (t *offsetTracker) fetched(partition int, offset int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.partitions[partition]
	if !ok {
		p = &partitionOffsets{done: make(map[int64]struct{})}
		t.partitions[partition] = p
	}
	p.pending = append(p.pending, offset)
}

// done возвращает offset для коммита, если непрерывный префикс продвинулся
func (t *offsetTracker) done(partition int, offset int64) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.partitions[partition]
	if !ok {
		return 0, false
	}
	p.done[offset] = struct{}{}

	commit, advanced := int64(0), false
	for len(p.pending) > 0 {
		head := p.pending[0]
		if _, ok := p.done[head]; !ok {
			break
		}
		delete(p.done, head)
		p.pending = p.pending[1:]
		commit, advanced = head, true
	}
	return commit, advanced
}
