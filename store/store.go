package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxResultChars is how much of a command's output is kept in history
const MaxResultChars = 100

// Entry is one executed command line
type Entry struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Result    string    `json:"result"`
	Failed    bool      `json:"failed"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryStore records executed commands
type HistoryStore interface {
	Record(ctx context.Context, e Entry) error
	// List returns up to limit entries, most recent first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]Entry, error)
	// Clear removes every entry
	Clear(ctx context.Context) error
	Close() error
}

// NewEntry builds an entry with a fresh ID, truncating result to
// MaxResultChars characters.
func NewEntry(command, result string, failed bool) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Command:   command,
		Result:    TruncateResult(result),
		Failed:    failed,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TruncateResult(result string) string {
	runes := []rune(result)
	if len(runes) <= MaxResultChars {
		return result
	}
	return string(runes[:MaxResultChars]) + "..."
}
