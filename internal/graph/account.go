package graph

import (
	"maps"
	"slices"
	"time"

	domaintypes "acctvault/internal/domain/types"
)

// Account is one credential entry. Relationship fields are read-only here;
// they change only through Graph so both directions stay in step. Every
// setter refreshes the modify time.
type Account struct {
	id           domaintypes.AccountID
	parent       *domaintypes.AccountID
	children     domaintypes.IDSet
	references   domaintypes.IDSet
	referencedBy domaintypes.IDSet

	name         string
	service      *string
	loginName    *string
	password     *domaintypes.Password
	comment      *string
	customFields map[string]string

	createTime time.Time
	modifyTime time.Time

	clock func() time.Time
}

func (a *Account) ID() domaintypes.AccountID { return a.id }

// Parent returns the parent id, if any.
func (a *Account) Parent() (domaintypes.AccountID, bool) {
	if a.parent == nil {
		return 0, false
	}
	return *a.parent, true
}

func (a *Account) Children() domaintypes.IDSet { return a.children.Clone() }
func (a *Account) References() domaintypes.IDSet { return a.references.Clone() }
func (a *Account) ReferencedBy() domaintypes.IDSet { return a.referencedBy.Clone() }

func (a *Account) Name() string { return a.name }

func (a *Account) Service() (string, bool) { return deref(a.service) }
func (a *Account) LoginName() (string, bool) { return deref(a.loginName) }
func (a *Account) Comment() (string, bool) { return deref(a.comment) }

// Password returns the stored secret, or nil when none is set.
func (a *Account) Password() *domaintypes.Password { return a.password }

// CustomFields returns a copy of the custom fields.
func (a *Account) CustomFields() map[string]string { return maps.Clone(a.customFields) }

// CustomFieldKeys returns the custom field keys in ascending order.
func (a *Account) CustomFieldKeys() []string { return sortedKeys(a.customFields) }

func (a *Account) CreateTime() time.Time { return a.createTime }
func (a *Account) ModifyTime() time.Time { return a.modifyTime }

// Fields returns a snapshot of the editable attributes, suitable for
// changing a few of them and passing the result to Graph.Edit.
func (a *Account) Fields() domaintypes.Fields {
	return domaintypes.Fields{
		Name:         a.name,
		Service:      clonePtr(a.service),
		LoginName:    clonePtr(a.loginName),
		Comment:      clonePtr(a.comment),
		Parent:       clonePtr(a.parent),
		References:   a.references.Clone(),
		CustomFields: maps.Clone(a.customFields),
	}
}

func (a *Account) SetName(name string) {
	a.name = name
	a.touch()
}

// SetService sets or, given nil, clears the service.
func (a *Account) SetService(s *string) {
	a.service = clonePtr(s)
	a.touch()
}

func (a *Account) SetLoginName(s *string) {
	a.loginName = clonePtr(s)
	a.touch()
}

func (a *Account) SetComment(s *string) {
	a.comment = clonePtr(s)
	a.touch()
}

// SetCustomField adds or replaces one custom field.
func (a *Account) SetCustomField(key, value string) {
	if a.customFields == nil {
		a.customFields = map[string]string{}
	}
	a.customFields[key] = value
	a.touch()
}

// RemoveCustomField deletes key, reporting whether it existed.
func (a *Account) RemoveCustomField(key string) bool {
	if _, ok := a.customFields[key]; !ok {
		return false
	}
	delete(a.customFields, key)
	a.touch()
	return true
}

func (a *Account) ClearCustomFields() {
	a.customFields = map[string]string{}
	a.touch()
}

// SetPassword seals plain with c and replaces the stored secret.
func (a *Account) SetPassword(plain []byte, c domaintypes.SecretCipher) error {
	p, err := domaintypes.SealPassword(plain, c)
	if err != nil {
		return err
	}
	if a.password != nil {
		a.password.Forget()
	}
	a.password = p
	a.touch()
	return nil
}

func (a *Account) ClearPassword() {
	if a.password == nil {
		return
	}
	a.password.Forget()
	a.password = nil
	a.touch()
}

func (a *Account) touch() {
	a.modifyTime = a.clock()
}

func (a *Account) record() *domaintypes.AccountRecord {
	r := &domaintypes.AccountRecord{
		ID:           a.id,
		Parent:       clonePtr(a.parent),
		Children:     a.children.Clone(),
		References:   a.references.Clone(),
		ReferencedBy: a.referencedBy.Clone(),
		Name:         a.name,
		Service:      clonePtr(a.service),
		LoginName:    clonePtr(a.loginName),
		Comment:      clonePtr(a.comment),
		CustomFields: maps.Clone(a.customFields),
		CreateTime:   a.createTime,
		ModifyTime:   a.modifyTime,
	}
	if a.password != nil {
		r.Password = a.password.Ciphered()
	}
	return r
}

func fromRecord(r *domaintypes.AccountRecord, clock func() time.Time) *Account {
	a := &Account{
		id:           r.ID,
		parent:       clonePtr(r.Parent),
		children:     domaintypes.NewIDSet(r.Children...),
		references:   domaintypes.NewIDSet(r.References...),
		referencedBy: domaintypes.NewIDSet(r.ReferencedBy...),
		name:         r.Name,
		service:      clonePtr(r.Service),
		loginName:    clonePtr(r.LoginName),
		comment:      clonePtr(r.Comment),
		customFields: maps.Clone(r.CustomFields),
		createTime:   r.CreateTime,
		modifyTime:   r.ModifyTime,
		clock:        clock,
	}
	if a.customFields == nil {
		a.customFields = map[string]string{}
	}
	if r.Password != nil {
		a.password = domaintypes.NewSealedPassword(r.Password)
	}
	return a
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
