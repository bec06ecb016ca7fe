package inmem

import (
	"context"

	"github.com/finwise/finwise/core/progress"
)

type ledger struct {
	db *DB
}

func NewLedger(db *DB) progress.Ledger {
	return &ledger{db: db}
}

func (l *ledger) QueryAllRecords(_ context.Context) ([]progress.Record, error) {
	l.db.mutex.RLock()
	defer l.db.mutex.RUnlock()
	return append(make([]progress.Record, 0, len(l.db.records)), l.db.records...), nil
}

func (l *ledger) UpsertRecord(_ context.Context, rec progress.Record) (progress.Record, error) {
	l.db.mutex.Lock()
	defer l.db.mutex.Unlock()

	for i := range l.db.records {
		if l.db.records[i].Key() == rec.Key() {
			l.db.records[i] = rec
			return rec, nil
		}
	}
	l.db.records = append(l.db.records, rec)
	return rec, nil
}
