package forge

// EnhanceRequest carries the client's view of an attempt. Level, cost, and
// override are echoes: the server recomputes everything from stored state
// and rejects on mismatch.
type EnhanceRequest struct {
	PlayerID     string `json:"player_id"`
	Nickname     string `json:"nickname,omitempty"`
	Level        int    `json:"level"`
	ClientTimeMS int64  `json:"client_time_ms"`
	ExpectedCost int64  `json:"expected_cost,omitempty"`

	UseDoubleChance bool `json:"use_double_chance,omitempty"`
	UseProtect      bool `json:"use_protect,omitempty"`
	UseDiscount     bool `json:"use_discount,omitempty"`
	UseBlessing     bool `json:"use_blessing,omitempty"`

	FragmentTier   *int `json:"fragment_tier,omitempty"`
	ChanceOverride *int `json:"chance_override,omitempty"`
}

type EnhanceResponse struct {
	Success         bool             `json:"success"`
	Chance          int              `json:"chance"`
	CostGold        int64            `json:"cost_gold"`
	NewLevel        int              `json:"new_level"`
	WinStreak       int              `json:"win_streak"`
	FragmentsGained int64            `json:"fragments_gained"`
	FragmentsSpent  int64            `json:"fragments_spent"`
	Gold            int64            `json:"gold"`
	Fragments       int64            `json:"fragments"`
	Inventory       map[string]int64 `json:"inventory"`
}

type RollRequest struct {
	PlayerID     string `json:"player_id"`
	Nickname     string `json:"nickname,omitempty"`
	ClientTimeMS int64  `json:"client_time_ms"`
}

type RollResponse struct {
	Chance int   `json:"chance"`
	Gold   int64 `json:"gold"`
}

type SellRequest struct {
	PlayerID     string `json:"player_id"`
	Nickname     string `json:"nickname,omitempty"`
	Level        int    `json:"level"`
	ClientTimeMS int64  `json:"client_time_ms"`
}

type SellResponse struct {
	Price int64 `json:"price"`
	Gold  int64 `json:"gold"`
}

type CooldownsResponse struct {
	// RemainingMinutes maps each cooldown-bearing item type to the minutes
	// left before reuse, rounded up, zero when ready.
	RemainingMinutes map[string]int64 `json:"remaining_minutes"`
}
