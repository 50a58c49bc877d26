package shop

type PurchaseRequest struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname,omitempty"`
	ItemType string `json:"item_type"`
}

type PurchaseResponse struct {
	ItemType string `json:"item_type"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
	Gold     int64  `json:"gold"`
}

type FragmentRollRequest struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname,omitempty"`
}

type FragmentRollResponse struct {
	Gained    int64 `json:"gained"`
	Fragments int64 `json:"fragments"`
	Gold      int64 `json:"gold"`
}

type CatalogItem struct {
	ItemType        string `json:"item_type"`
	Price           int64  `json:"price"`
	CooldownMinutes int64  `json:"cooldown_minutes"`
	MaxQuantity     int64  `json:"max_quantity"`
	Material        bool   `json:"material"`
}
