package record

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"dotsandboxes/pkg/game"
)

// Journal appends move records to a JSON-lines file, batched through a
// Pusher so the UI thread never waits on disk.
type Journal struct {
	Uid    GameUid
	file   *os.File
	pusher *Pusher[MoveRecord]
	step   int
}

// OpenJournal creates the journal file for a new session under dir,
// named by its GameUid, and starts the flush loop.
func OpenJournal(dir string, onError func(error)) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	uid := NewGameUid()
	file, err := os.OpenFile(filepath.Join(dir, string(uid)+".jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	j := &Journal{Uid: uid, file: file}
	j.pusher = NewPusher(
		WithPushLogic(j.writeAll),
		WithPushInterval[MoveRecord](time.Second),
		WithErrorHandler[MoveRecord](onError),
	)
	j.pusher.Start()
	return j, nil
}

func (j *Journal) writeAll(records ...MoveRecord) error {
	for _, r := range records {
		line, err := sonic.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := j.file.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Record buffers one move for the next flush. Steps are numbered from
// 1 in call order.
func (j *Journal) Record(outcome game.MoveOutcome) {
	j.step++
	j.pusher.AddMessages(NewMoveRecord(j.Uid, j.step, outcome, NewTimeStamp(time.Now())))
}

// Rotate starts a fresh numbering for a restarted game under a new
// GameUid, in the same file.
func (j *Journal) Rotate() {
	j.Uid = NewGameUid()
	j.step = 0
}

// Close flushes pending records and closes the file.
func (j *Journal) Close() error {
	flushErr := j.pusher.Stop()
	if err := j.file.Close(); err != nil {
		return err
	}
	return flushErr
}
