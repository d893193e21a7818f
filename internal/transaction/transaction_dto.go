package transaction

type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=received recieved sent"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory" binding:"required"`
	Description string  `json:"description" binding:"required"`
	To          string  `json:"to" binding:"required"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date" binding:"required"`
}

// MonthEntry is one slot of the fixed 12-entry series for the current year.
type MonthEntry struct {
	Name     string  `json:"name"`
	Received float64 `json:"received"`
	Sent     float64 `json:"sent"`
}

type ExpenseEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type SummaryResponse struct {
	OpeningBalance float64 `json:"openingBalance"`
	Received       float64 `json:"received"`
	Sent           float64 `json:"sent"`
	ClosingBalance float64 `json:"closingBalance"`
}
