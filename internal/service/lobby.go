package service

import (
	"sync"
	"time"
)

// LobbyEntry is a public game still waiting for an opponent.
type LobbyEntry struct {
	GameID    string    `json:"gameId"`
	CreatedBy string    `json:"createdBy"`
	ListedAt  time.Time `json:"listedAt"`
}

// Lobby lists public games missing a player, oldest first.
type Lobby struct {
	entries []LobbyEntry
	mu      sync.Mutex
}

func NewLobby() *Lobby {
	return &Lobby{
		entries: []LobbyEntry{},
	}
}

func (l *Lobby) Add(entry LobbyEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.GameID == entry.GameID {
			return
		}
	}
	l.entries = append(l.entries, entry)
}

func (l *Lobby) Remove(gameID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.GameID == gameID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// List returns at most limit entries; limit <= 0 means all of them.
func (l *Lobby) List(limit int) []LobbyEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]LobbyEntry, n)
	copy(out, l.entries[:n])
	return out
}

func (l *Lobby) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
