package store

import "time"

type Player struct {
	ID            string
	Nickname      string
	Gold          int64
	Fragments     int64
	PendingChance *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Sword struct {
	PlayerID  string
	Level     int
	WinStreak int
	UpdatedAt time.Time
}

type RankingEntry struct {
	PlayerID      string
	Nickname      string
	MaxSwordLevel int
	TotalGold     int64
	Fragments     int64
}

// LedgerEntry is returned verbatim on the admin ledger endpoint.
type LedgerEntry struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	RefType   string    `json:"ref_type"`
	RefID     string    `json:"ref_id"`
	CreatedAt time.Time `json:"created_at"`
}
