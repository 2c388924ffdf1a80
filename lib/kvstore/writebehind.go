package kvstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/grocerly/shopcore/lib/mylog"
)

// Persister mirrors in-memory state to a KV in the background.
// In-memory state is authoritative: a failed write is logged and dropped,
// never retried and never rolled back.
//
// Every write is tagged with a per-key monotonically increasing sequence
// number. A write that observes a newer sequence already applied for its key
// is discarded, so the latest in-memory snapshot always wins at the store
// even when goroutine scheduling reorders the writes.
type Persister struct {
	kv     KV
	logger mylog.Logger

	mutex    sync.Mutex
	nextSeq  map[string]uint64
	applied  map[string]uint64
	keyLocks map[string]*sync.Mutex

	wg sync.WaitGroup
}

func NewPersister(kv KV, logger mylog.Logger) *Persister {
	return &Persister{
		kv:       kv,
		logger:   logger,
		nextSeq:  map[string]uint64{},
		applied:  map[string]uint64{},
		keyLocks: map[string]*sync.Mutex{},
	}
}

// Store marshals value to JSON and persists it under key, fire-and-forget.
func (p *Persister) Store(c context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		p.logger.Log(c, key, mylog.SeverityWarn, "Not persisting key %s: marshal error: %s", key, err)
		return
	}

	p.enqueue(c, key, string(payload), false)
}

// Delete removes key from the store, fire-and-forget.
func (p *Persister) Delete(c context.Context, key string) {
	p.enqueue(c, key, "", true)
}

// Flush blocks until all writes issued so far have been applied or dropped.
func (p *Persister) Flush() {
	p.wg.Wait()
}

func (p *Persister) enqueue(c context.Context, key string, payload string, remove bool) {
	p.mutex.Lock()
	p.nextSeq[key]++
	seq := p.nextSeq[key]
	lock, exists := p.keyLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		p.keyLocks[key] = lock
	}
	p.mutex.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.apply(c, key, seq, payload, remove, lock)
	}()
}

func (p *Persister) apply(c context.Context, key string, seq uint64, payload string, remove bool, lock *sync.Mutex) {
	// Serialize per key: the sequence check and the KV call must not be
	// split, or a stale snapshot could still land last.
	lock.Lock()
	defer lock.Unlock()

	p.mutex.Lock()
	stale := seq <= p.applied[key]
	if !stale {
		p.applied[key] = seq
	}
	p.mutex.Unlock()

	if stale {
		return
	}

	var err error
	if remove {
		err = p.kv.Remove(c, key)
	} else {
		err = p.kv.Set(c, key, payload)
	}
	if err != nil {
		p.logger.Log(c, key, mylog.SeverityWarn, "Error persisting key %s, in-memory state remains authoritative: %s", key, err)
	}
}
