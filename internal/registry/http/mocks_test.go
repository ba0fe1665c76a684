package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/gatekeeper/internal/httputil"
	"github.com/allisson/gatekeeper/internal/registry/domain"
	"github.com/allisson/gatekeeper/internal/registry/usecase"
)

// MockGroupUseCase is a mock implementation of usecase.GroupUseCase
type MockGroupUseCase struct {
	mock.Mock
}

func (m *MockGroupUseCase) Create(ctx context.Context, actor, name string) (*domain.Group, error) {
	args := m.Called(ctx, actor, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupUseCase) AssignRoles(ctx context.Context, actor string, groupID int64, roleIDs []int64) error {
	args := m.Called(ctx, actor, groupID, roleIDs)
	return args.Error(0)
}

func (m *MockGroupUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleUseCase is a mock implementation of usecase.RoleUseCase
type MockRoleUseCase struct {
	mock.Mock
}

func (m *MockRoleUseCase) Create(ctx context.Context, actor, name string) (*domain.Role, error) {
	args := m.Called(ctx, actor, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationUseCase is a mock implementation of usecase.ApplicationUseCase
type MockApplicationUseCase struct {
	mock.Mock
}

func (m *MockApplicationUseCase) Create(
	ctx context.Context,
	actor string,
	input usecase.CreateApplicationInput,
) (*domain.Application, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUseCase) ListPending(ctx context.Context) ([]*domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Application), args.Error(1)
}

func (m *MockApplicationUseCase) Approve(ctx context.Context, actor string, id int64) (*domain.Application, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUseCase) Reject(ctx context.Context, actor string, id int64) (*domain.Application, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUseCase) AssignToGroup(
	ctx context.Context,
	actor string,
	applicationID, groupID int64,
) (*domain.Application, error) {
	args := m.Called(ctx, actor, applicationID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestContext builds a gin test context with an optional JSON body and
// the actor stamp the authentication middleware would normally set.
func createTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(httputil.ActorKey, "admin")

	return c, w
}
