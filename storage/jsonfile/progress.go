package jsonfile

import (
	"context"

	"github.com/finwise/finwise/core/progress"
)

type ledger struct {
	db *DB
}

// NewLedger returns a progress.Ledger over progress.json. A missing file is an empty ledger.
func NewLedger(db *DB) progress.Ledger {
	return &ledger{db: db}
}

func (l *ledger) load() ([]progress.Record, error) {
	records := make([]progress.Record, 0)
	if err := l.db.read(ProgressFile, &records, true); err != nil {
		return nil, err
	}
	return records, nil
}

func (l *ledger) QueryAllRecords(_ context.Context) ([]progress.Record, error) {
	l.db.mutex.Lock()
	defer l.db.mutex.Unlock()
	return l.load()
}

func (l *ledger) UpsertRecord(_ context.Context, rec progress.Record) (progress.Record, error) {
	l.db.mutex.Lock()
	defer l.db.mutex.Unlock()

	records, err := l.load()
	if err != nil {
		return progress.Record{}, err
	}

	found := false
	for i := range records {
		if records[i].Key() == rec.Key() {
			records[i] = rec // in place: position preserved
			found = true
			break
		}
	}
	if !found {
		records = append(records, rec)
	}

	if err := l.db.write(ProgressFile, records); err != nil {
		return progress.Record{}, err
	}
	return rec, nil
}
