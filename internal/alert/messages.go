package alert

import (
	"encoding/json"
	"time"

	"expenses/internal/core"
)

// BudgetAlertMessage is the wire form of an over-budget alert. Amounts are
// cents so consumers never deal with float money.
type BudgetAlertMessage struct {
	Category    string    `json:"category"`
	BudgetCents int64     `json:"budget_cents"`
	SpentCents  int64     `json:"spent_cents"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewBudgetAlertMessage(a core.BudgetAlert) *BudgetAlertMessage {
	return &BudgetAlertMessage{
		Category:    a.Category.String(),
		BudgetCents: a.Budget.Cents,
		SpentCents:  a.Spent.Cents,
		Month:       int(a.Month),
		Year:        a.Year,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetAlertMessageFromJSON creates a message from JSON bytes.
func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
