package ledger

import "bankist/internal/models"

// Entry appends Amount to the movements of the account named UserName
type Entry struct {
	UserName string
	Amount   float64
}

// Transaction is a set of entries that are applied together or not at all
type Transaction struct {
	Kind    string
	Entries []Entry
}

const (
	KindTransfer = "transfer"
	KindLoan     = "loan"
)

// NewTransfer debits sender and credits receiver by amount
func NewTransfer(sender, receiver *models.Account, amount float64) Transaction {
	return Transaction{
		Kind: KindTransfer,
		Entries: []Entry{
			{UserName: sender.UserName, Amount: -amount},
			{UserName: receiver.UserName, Amount: amount},
		},
	}
}

// NewLoan credits account by amount
func NewLoan(account *models.Account, amount float64) Transaction {
	return Transaction{
		Kind:    KindLoan,
		Entries: []Entry{{UserName: account.UserName, Amount: amount}},
	}
}

// UserNames returns the distinct accounts touched by the transaction, in entry order
func (t Transaction) UserNames() []string {
	seen := make(map[string]bool, len(t.Entries))
	names := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		if seen[e.UserName] {
			continue
		}
		seen[e.UserName] = true
		names = append(names, e.UserName)
	}
	return names
}

// ApplyTo appends the transaction's entries to the matching accounts.
// Callers must have checked that every entry has an account in byUserName.
func (t Transaction) ApplyTo(byUserName map[string]*models.Account) {
	for _, e := range t.Entries {
		account := byUserName[e.UserName]
		account.Movements = append(account.Movements, e.Amount)
	}
}
