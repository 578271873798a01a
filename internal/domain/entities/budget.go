package entities

// BudgetOption is one supplier quote inside a budget request. At most one
// option per request may be selected; selecting one clears its siblings.
type BudgetOption struct {
	ID         string  `json:"id"`
	Supplier   string  `json:"supplier"`
	Amount     float64 `json:"amount"`
	Details    string  `json:"details"`
	Date       string  `json:"date"`
	IsSelected bool    `json:"isSelected"`
}

// BudgetRequest is a purchase quotation round: one product, many supplier
// options. The request owns its options outright.
type BudgetRequest struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	ProductName string         `json:"productName"`
	Description string         `json:"description"`
	Date        string         `json:"date"`
	Options     []BudgetOption `json:"options"`
}
