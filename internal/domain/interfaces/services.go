package interfaces

// VaultService applies the main password policy and runs work against an
// account file.
type VaultService interface {
	// Create makes a new, empty account file at path and saves it.
	Create(path string, mainPassword []byte) (AccountStore, error)
	// Open authenticates and loads the account file at path.
	Open(path string, mainPassword []byte) (AccountStore, error)
	// View opens path, runs fn and closes without saving.
	View(path string, mainPassword []byte, fn func(AccountStore) error) error
	// Update opens path, runs fn and saves when fn succeeds.
	Update(path string, mainPassword []byte, fn func(AccountStore) error) error
}
