package models

// CategoryReport counts the assets of one category by state.
type CategoryReport struct {
	CategoryID          int64  `json:"categoryId"`
	Category            string `json:"category"`
	Total               int64  `json:"total"`
	Assigned            int64  `json:"assigned"`
	Available           int64  `json:"available"`
	NotAvailable        int64  `json:"notAvailable"`
	WaitingForRecycling int64  `json:"waitingForRecycling"`
	Recycled            int64  `json:"recycled"`
}
