package middleware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *mockAuthorizer) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// fakeContext implements the parts of tele.Context the middleware touches
type fakeContext struct {
	tele.Context

	sender    *tele.User
	callback  *tele.Callback
	store     map[string]interface{}
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func newFakeContext(userID int64, callback *tele.Callback) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		callback: callback,
		store:    make(map[string]interface{}),
	}
}

func (c *fakeContext) Sender() *tele.User { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Get(key string) interface{} { return c.store[key] }
func (c *fakeContext) Set(key string, val interface{}) {
	c.store[key] = val
}

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authorized     bool
		callback       *tele.Callback
		expectNext     bool
		expectResponse bool
	}{
		{
			name:       "authorized text",
			authorized: true,
			expectNext: true,
		},
		{
			name:       "authorized callback",
			authorized: true,
			callback:   &tele.Callback{ID: "1", Data: "\fstats"},
			expectNext: true,
		},
		{
			name:       "unauthorized text is a password attempt",
			authorized: false,
			expectNext: true,
		},
		{
			name:           "unauthorized callback is blocked",
			authorized:     false,
			callback:       &tele.Callback{ID: "2", Data: "\fstats"},
			expectNext:     false,
			expectResponse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mockAuthorizer)
			auth.On("EnsureUserExists", int64(42)).Return(nil)
			auth.On("IsAuthorized", int64(42)).Return(tt.authorized, nil)

			called := false
			next := func(c tele.Context) error {
				called = true
				assert.Equal(t, tt.authorized, c.Get(AuthorizedKey))
				return nil
			}

			c := newFakeContext(42, tt.callback)
			err := AuthMiddleware(auth, zap.NewNop())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			if tt.expectResponse {
				assert.Len(t, c.responses, 1)
				assert.True(t, c.responses[0].ShowAlert)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthMiddleware_StoreErrors(t *testing.T) {
	t.Run("ensure fails", func(t *testing.T) {
		auth := new(mockAuthorizer)
		auth.On("EnsureUserExists", int64(42)).Return(fmt.Errorf("db error"))

		called := false
		c := newFakeContext(42, nil)
		err := AuthMiddleware(auth, zap.NewNop())(func(tele.Context) error {
			called = true
			return nil
		})(c)

		assert.NoError(t, err)
		assert.False(t, called)
		assert.Len(t, c.sent, 1)
		auth.AssertNotCalled(t, "IsAuthorized", mock.Anything)
	})

	t.Run("authorization check fails", func(t *testing.T) {
		auth := new(mockAuthorizer)
		auth.On("EnsureUserExists", int64(42)).Return(nil)
		auth.On("IsAuthorized", int64(42)).Return(false, fmt.Errorf("db error"))

		called := false
		c := newFakeContext(42, nil)
		err := AuthMiddleware(auth, zap.NewNop())(func(tele.Context) error {
			called = true
			return nil
		})(c)

		assert.NoError(t, err)
		assert.False(t, called)
		assert.Nil(t, c.Get(AuthorizedKey))
	})
}
