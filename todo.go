/*
	Project: Finwise - bite-sized personal finance lessons (INR catalog)
	Target: first-time earners; free intro lessons, paid deep-dives unlocked per lesson
*/
package finwise

/*
TODO: purchase -> progress is two independent writes; reconcile receipts that never unlocked (see admin "buy" warnings)
TODO: quiz attempts are not persisted; a passed quiz could mark the lesson completed once attempts are stored

Storage:
	- jsonfile: one process per data dir (the mutex is per process, not per file)
	- memory: seeded from the data dir at startup, lost on restart
*/
