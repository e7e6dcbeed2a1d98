package interfaces

import (
	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/graph"
)

// AccountView is the read side of the account graph.
type AccountView interface {
	Len() int
	LiveCount() int
	Exists(id domaintypes.AccountID) bool
	Get(id domaintypes.AccountID) (*graph.Account, error)
	Accounts() []*graph.Account
	ChildrenOf(id domaintypes.AccountID) domaintypes.IDSet
	ReferencedBy(id domaintypes.AccountID) domaintypes.IDSet
	Roots() domaintypes.IDSet
	Walk(root *domaintypes.AccountID, fn graph.WalkFunc) error
	Descendants(id domaintypes.AccountID) domaintypes.IDSet
	Ancestors(id domaintypes.AccountID) []domaintypes.AccountID
	Filter(query string) []*graph.Account
	ShortForm(id domaintypes.AccountID) (string, error)
}

// AccountStore is an open encrypted account file.
type AccountStore interface {
	Path() string
	NonceCounter() uint64
	IsOpen() bool
	Save() error
	SaveAs(path string) error
	Close()

	Accounts() AccountView
	Graph() *graph.Graph
	AddAccount(name string, parent *domaintypes.AccountID) (domaintypes.AccountID, error)
	EditAccount(id domaintypes.AccountID, f domaintypes.Fields) error
	RemoveAccount(id domaintypes.AccountID) error
	Update(id domaintypes.AccountID, fn func(a *graph.Account) error) error
	SetPassword(id domaintypes.AccountID, plain []byte) error
	ClearPassword(id domaintypes.AccountID) error
	Decipher(id domaintypes.AccountID) ([]byte, error)
}

//go:generate mockgen -destination=../mocks/opener.go -package=mocks acctvault/internal/domain/interfaces DatabaseOpener

// DatabaseOpener creates and opens account files.
type DatabaseOpener interface {
	Create(path string, mainPassword []byte) (AccountStore, error)
	Open(path string, mainPassword []byte) (AccountStore, error)
	Exists(path string) bool
}

// Compile-time assertion that the graph satisfies the read view.
var _ AccountView = (*graph.Graph)(nil)
