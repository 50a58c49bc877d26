package public

type LeaderboardRow struct {
	Rank          int    `json:"rank"`
	PlayerID      string `json:"player_id"`
	Nickname      string `json:"nickname"`
	MaxSwordLevel int    `json:"max_sword_level"`
	Gold          int64  `json:"gold"`
	Fragments     int64  `json:"fragments"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardRow `json:"entries"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type Profile struct {
	PlayerID     string           `json:"player_id"`
	Nickname     string           `json:"nickname"`
	Gold         int64            `json:"gold"`
	Fragments    int64            `json:"fragments"`
	SwordLevel   int              `json:"sword_level"`
	WinStreak    int              `json:"win_streak"`
	SellPrice    int64            `json:"sell_price"`
	Inventory    map[string]int64 `json:"inventory"`
	Achievements []int            `json:"achievements"`
}
