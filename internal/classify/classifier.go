// Package classify implements record classification: each input record is
// reduced to a result mapping based on its status, priority, tags, and
// meta_* keys.
package classify

import (
	"go.uber.org/zap"

	"triage/internal/record"
)

// Statuses recognized by the classifier.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
	StatusDone     = "done"
)

// Tags that mark a record as flagged.
const (
	TagImportant = "important"
	TagCritical  = "critical"
)

// Options configures a Classifier.
type Options struct {
	// FollowChains walks "next" links after classifying. On by default
	// from config; the walk stops at the first record whose status is
	// "done". A cyclic chain with no such terminator does not terminate.
	FollowChains bool

	Logger *zap.Logger
}

// Classifier turns records into classification results. Each call is
// independent; the classifier holds no per-record state and is safe to
// reuse.
type Classifier struct {
	follow bool
	log    *zap.Logger
}

// New builds a Classifier from options. A nil logger is replaced with a
// no-op one.
func New(opts Options) *Classifier {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{follow: opts.FollowChains, log: log}
}

// Classify reduces a record to a result mapping. The second return is
// false when there is nothing to classify: the record is empty, or it is
// inactive and strict mode discards it. The input record is never
// mutated.
func (c *Classifier) Classify(rec record.Record, strict bool) (record.Result, bool) {
	if rec.IsEmpty() {
		return nil, false
	}

	res := record.Result{}
	status := rec.Status()

	switch status {
	case StatusActive:
		res["active"] = true
		if p, ok := rec.Priority(); ok {
			switch {
			case p > 5:
				res["urgent"] = true
			case p > 3:
				res["normal"] = true
			default:
				res["low"] = true
			}
		}
	case StatusInactive:
		res["active"] = false
		if strict {
			c.log.Debug("discarding inactive record in strict mode")
			return nil, false
		}
	case StatusPending:
		res["pending"] = true
		for _, k := range rec.MetaKeys() {
			res[k] = rec[k]
		}
	default:
		res["unknown"] = true
	}

	// First flag tag wins; the scan stops there.
	for _, tag := range rec.Tags() {
		if tag == TagImportant || tag == TagCritical {
			res["flagged"] = true
			break
		}
	}

	if c.follow {
		c.walkChain(rec)
	}

	c.log.Debug("classified record",
		zap.String("status", status),
		zap.Int("result_keys", len(res)))
	return res, true
}

// walkChain advances a local cursor along "next" links until the chain
// ends or a record with status "done" is reached. Only the cursor moves;
// the chain itself is left untouched.
func (c *Classifier) walkChain(rec record.Record) {
	cur := rec
	for {
		next, ok := cur.Next()
		if !ok {
			return
		}
		cur = next
		if cur.Status() == StatusDone {
			return
		}
	}
}

// ValidateBatch reports whether every item in a decoded batch is a
// record-shaped mapping.
func (c *Classifier) ValidateBatch(items []any) bool {
	for i, item := range items {
		switch item.(type) {
		case map[string]any, record.Record:
		default:
			c.log.Debug("batch item is not a mapping", zap.Int("index", i))
			return false
		}
	}
	return true
}
