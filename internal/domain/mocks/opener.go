// Package mocks holds GoMock doubles for the domain interfaces, in the
// layout mockgen (github.com/golang/mock v1.3.1) produces. Running
// go generate ./internal/domain/interfaces rewrites them.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	interfaces "acctvault/internal/domain/interfaces"
)

// MockDatabaseOpener is a mock of DatabaseOpener interface
type MockDatabaseOpener struct {
	ctrl     *gomock.Controller
	recorder *MockDatabaseOpenerMockRecorder
}

// MockDatabaseOpenerMockRecorder is the mock recorder for MockDatabaseOpener
type MockDatabaseOpenerMockRecorder struct {
	mock *MockDatabaseOpener
}

// NewMockDatabaseOpener creates a new mock instance
func NewMockDatabaseOpener(ctrl *gomock.Controller) *MockDatabaseOpener {
	mock := &MockDatabaseOpener{ctrl: ctrl}
	mock.recorder = &MockDatabaseOpenerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockDatabaseOpener) EXPECT() *MockDatabaseOpenerMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockDatabaseOpener) Create(arg0 string, arg1 []byte) (interfaces.AccountStore, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", arg0, arg1)
	ret0, _ := ret[0].(interfaces.AccountStore)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create
func (mr *MockDatabaseOpenerMockRecorder) Create(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockDatabaseOpener)(nil).Create), arg0, arg1)
}

// Exists mocks base method
func (m *MockDatabaseOpener) Exists(arg0 string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Exists indicates an expected call of Exists
func (mr *MockDatabaseOpenerMockRecorder) Exists(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockDatabaseOpener)(nil).Exists), arg0)
}

// Open mocks base method
func (m *MockDatabaseOpener) Open(arg0 string, arg1 []byte) (interfaces.AccountStore, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", arg0, arg1)
	ret0, _ := ret[0].(interfaces.AccountStore)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Open indicates an expected call of Open
func (mr *MockDatabaseOpenerMockRecorder) Open(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockDatabaseOpener)(nil).Open), arg0, arg1)
}

var _ interfaces.DatabaseOpener = (*MockDatabaseOpener)(nil)
