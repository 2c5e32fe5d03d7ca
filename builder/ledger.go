package builder

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	"github.com/packplan/packplan/util"
)

// Ledger records output-file fingerprints between runs so `check` can
// report stale or missing artifacts without rebuilding anything.
type Ledger struct {
	db              *pebble.DB
	batch           *pebble.Batch
	highest, lowest []byte
	curSize         int
}

const maxWriterBuffer = 16 << 20

// LedgerDir is where the ledger lives inside a package directory.
const LedgerDir = ".packplan/ledger"

func OpenLedger(baseDir string) (*Ledger, error) {
	db, err := pebble.Open(filepath.Join(baseDir, LedgerDir), &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Ledger{db: db, batch: db.NewBatch()}, nil
}

func copyBytes(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// Record stores the fingerprint for one output file. Writes are batched
// and flushed once the buffer passes maxWriterBuffer.
func (l *Ledger) Record(file string, fingerprint string) error {
	id := []byte(file)
	val := []byte(fingerprint)
	l.curSize += len(id) + len(val)
	if l.highest == nil || bytes.Compare(id, l.highest) > 0 {
		l.highest = copyBytes(id)
	}
	if l.lowest == nil || bytes.Compare(id, l.lowest) < 0 {
		l.lowest = copyBytes(id)
	}
	err := l.batch.Set(id, val, nil)
	if l.curSize > maxWriterBuffer {
		l.batch.Commit(nil)
		l.batch.Reset()
		l.curSize = 0
	}
	return err
}

// Fingerprint returns the recorded fingerprint for a file, if any.
func (l *Ledger) Fingerprint(file string) (string, bool) {
	val, closer, err := l.db.Get([]byte(file))
	if err != nil {
		return "", false
	}
	out := string(val)
	closer.Close()
	return out, true
}

func (l *Ledger) Close() error {
	err := l.batch.Commit(nil)
	if err != nil {
		return err
	}
	l.batch.Close()
	if l.lowest != nil && l.highest != nil {
		l.db.Compact(l.lowest, l.highest, true)
	}
	return l.db.Close()
}

// FileFingerprint is the staleness key for one artifact: size plus a quick
// head/tail hash, cheap enough to run over a whole dist directory.
func FileFingerprint(path string) (string, error) {
	hash, err := util.QuickSHA1(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", util.FileSize(path), hash), nil
}
