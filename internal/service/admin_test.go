package service_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
	"via-sacra/internal/repository/mocks"
	"via-sacra/internal/service"
)

const (
	testAdminEmail  = "admin@viasacra.example"
	testAdminSecret = "test-secret"
)

func newAdminService(t *testing.T, repo *mocks.RoomRepository) *service.AdminService {
	t.Helper()
	svc, err := service.NewAdminService(repo, testAdminEmail, hashed(t, "admin-pass"), testAdminSecret, 1)
	require.NoError(t, err, "creating AdminService should not fail")
	return svc
}

func TestNewAdminService_RequiresSecret(t *testing.T) {
	_, err := service.NewAdminService(new(mocks.RoomRepository), testAdminEmail, "", "", 1)
	assert.Error(t, err)
}

func TestAdminService_Login_Success(t *testing.T) {
	svc := newAdminService(t, new(mocks.RoomRepository))

	tokenStr, err := svc.Login(context.Background(), "  ADMIN@viasacra.example ", "admin-pass")

	require.NoError(t, err)
	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) { return []byte(testAdminSecret), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, testAdminEmail, claims["email"])
	assert.Equal(t, service.AdminRole, claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestAdminService_Login_Failures(t *testing.T) {
	svc := newAdminService(t, new(mocks.RoomRepository))

	_, err := svc.Login(context.Background(), "intruder@example.com", "admin-pass")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, err = svc.Login(context.Background(), testAdminEmail, "wrong")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAdminService_Login_NotConfigured(t *testing.T) {
	svc, err := service.NewAdminService(new(mocks.RoomRepository), "", "", testAdminSecret, 1)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestAdminService_ListAllRooms_PassesFilter(t *testing.T) {
	repo := new(mocks.RoomRepository)
	svc := newAdminService(t, repo)
	ctx := context.Background()

	repo.On("ExpireDue", ctx, anyTime).Return(int64(0), nil).Once()
	repo.On("List", ctx, mock.MatchedBy(func(f repository.RoomFilter) bool {
		return !f.ActiveOnly && f.NameContains == "jovens"
	})).Return([]domain.Room{{RoomID: "a"}, {RoomID: "b", Active: false}}, nil).Once()

	rooms, err := svc.ListAllRooms(ctx, "jovens")

	require.NoError(t, err)
	assert.Len(t, rooms, 2)
	repo.AssertExpectations(t)
}

func TestAdminService_DeactivateRoom(t *testing.T) {
	repo := new(mocks.RoomRepository)
	svc := newAdminService(t, repo)
	ctx := context.Background()

	repo.On("Deactivate", ctx, "room-1").Return(nil).Once()
	repo.On("FindByID", ctx, "room-1").Return(&domain.Room{RoomID: "room-1", Active: false}, nil).Once()

	room, err := svc.DeactivateRoom(ctx, "room-1")

	require.NoError(t, err)
	assert.False(t, room.Active)
	repo.AssertExpectations(t)
}

func TestAdminService_DeactivateRoom_NotFound(t *testing.T) {
	repo := new(mocks.RoomRepository)
	svc := newAdminService(t, repo)
	ctx := context.Background()

	repo.On("Deactivate", ctx, "missing").Return(repository.ErrRoomNotFound).Once()

	_, err := svc.DeactivateRoom(ctx, "missing")

	assert.ErrorIs(t, err, service.ErrRoomNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
