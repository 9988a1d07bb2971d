package record

import "github.com/google/uuid"

// GameUid identifies one game session in the journal.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}
