package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/user-orders-api/internal/domain/entity"
	"github.com/shopcore/user-orders-api/internal/domain/repository"
)

// mockUserRepo is an in-memory stand-in for the mongo repository. It
// enforces the same uniqueness and not-found semantics, and mimics the
// insert-time hash so tests can assert the plain password never survives.
type mockUserRepo struct {
	users map[int64]*entity.User
}

func newMockRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*entity.User)}
}

func (m *mockUserRepo) Insert(_ context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.UserID == u.UserID || existing.Username == u.Username {
			return repository.ErrDuplicateKey
		}
	}
	u.Password = "hashed:" + u.Password
	stored := *u
	m.users[u.UserID] = &stored
	return nil
}

func (m *mockUserRepo) FindByUserID(_ context.Context, userID int64) (*entity.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	result := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) UpdatePartial(_ context.Context, userID int64, fields entity.UserUpdate) (*entity.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if fields.FullName != nil {
		u.FullName = *fields.FullName
	}
	if fields.Age != nil {
		u.Age = *fields.Age
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.IsActive != nil {
		u.IsActive = *fields.IsActive
	}
	if fields.Hobbies != nil {
		u.Hobbies = *fields.Hobbies
	}
	if fields.Address != nil {
		u.Address = *fields.Address
	}
	if fields.Orders != nil {
		u.Orders = *fields.Orders
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) AppendOrder(_ context.Context, userID int64, order entity.Order) (*entity.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Orders = append(u.Orders, order)
	result := *u
	return &result, nil
}

func (m *mockUserRepo) Delete(_ context.Context, userID int64) (bool, error) {
	if _, ok := m.users[userID]; !ok {
		return false, nil
	}
	delete(m.users, userID)
	return true, nil
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func testUser(userID int64, username string) *entity.User {
	return &entity.User{
		UserID:   userID,
		Username: username,
		Password: "secret",
		FullName: entity.FullName{FirstName: "Ada", LastName: "Lovelace"},
		Age:      30,
		Email:    username + "@example.com",
		IsActive: true,
		Hobbies:  []string{"chess"},
		Address:  entity.Address{Street: "1 Main St", City: "London", Country: "UK"},
	}
}

func newTestService() (*Service, *mockUserRepo) {
	repo := newMockRepo()
	return NewService(repo, nil), repo
}

func TestCreateAndFindByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.NotEqual(t, "secret", created.Password, "plain password must not survive insert")

	found, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, entity.FullName{FirstName: "Ada", LastName: "Lovelace"}, found.FullName)
}

func TestCreateDuplicateUserID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, testUser(1, "grace"))
	assert.ErrorIs(t, err, ErrUserExists)

	// the original record is untouched
	found, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, testUser(2, "ada"))
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestFindByIDNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRetrieve(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	users, err := svc.Retrieve(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testUser(2, "grace"))
	require.NoError(t, err)

	users, err = svc.Retrieve(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateEmptyIsRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, entity.UserUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	// empty update on a missing user is still EmptyUpdate, not NotFound
	_, err = svc.Update(ctx, 99, entity.UserUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService()
	age := 31
	_, err := svc.Update(context.Background(), 99, entity.UserUpdate{Age: &age})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	age := 31
	email := "new@example.com"
	updated, err := svc.Update(ctx, 1, entity.UserUpdate{Age: &age, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "new@example.com", updated.Email)
	// untouched fields keep their values
	assert.Equal(t, "ada", updated.Username)
	assert.Equal(t, entity.Address{Street: "1 Main St", City: "London", Country: "UK"}, updated.Address)
}

func TestDeleteIdempotentEffect(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrUserNotFound)
}

func TestOrdersLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testUser(1, "ada"))
	require.NoError(t, err)

	// no orders yet
	orders, err := svc.GetOrders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	total, err := svc.TotalOrderValue(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, total)

	appended := []entity.Order{
		{ProductName: "keyboard", Price: 10, Quantity: 2},
		{ProductName: "mouse", Price: 5.5, Quantity: 1},
		{ProductName: "monitor", Price: 100, Quantity: 3},
	}
	for _, o := range appended {
		require.NoError(t, svc.AppendOrder(ctx, 1, o))
	}

	orders, err = svc.GetOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, len(appended))
	// orders retain call order
	assert.Equal(t, appended, orders)

	total, err = svc.TotalOrderValue(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10*2+5.5*1+100*3, total, 1e-9)
}

func TestOrdersNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetOrders(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.AppendOrder(ctx, 99, entity.Order{ProductName: "x", Price: 1, Quantity: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.TotalOrderValue(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
