package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bistro-api/docstore"
	"bistro-api/models"
	"bistro-api/repository"
)

func newEngine(t *testing.T) (*Engine, *repository.Store) {
	t.Helper()
	repo := repository.New(docstore.NewMemStore())
	return NewEngine(repo), repo
}

func seedOrder(t *testing.T, repo *repository.Store, o models.Order) models.Order {
	t.Helper()
	created, err := repo.CreateOrder(context.Background(), o)
	require.NoError(t, err)
	return created
}

func TestVisibilityPartition(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)

	c1, c2, client := "c1", "c2", "u1"
	o1 := seedOrder(t, repo, models.Order{CustomerName: "guest", Status: models.StatusPending})
	o2 := seedOrder(t, repo, models.Order{CustomerName: "guest", Status: models.StatusPending, LivreurID: &c1})
	o3 := seedOrder(t, repo, models.Order{CustomerName: "alice", Status: models.StatusConfirmed, LivreurID: &c2, UserID: &client})

	ids := func(orders []models.Order) map[string]bool {
		m := map[string]bool{}
		for _, o := range orders {
			m[o.ID] = true
		}
		return m
	}

	c1View, err := engine.VisibleOrders(ctx, Actor{ID: c1, Role: models.RoleLivreur})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{o1.ID: true, o2.ID: true}, ids(c1View))

	c2View, err := engine.VisibleOrders(ctx, Actor{ID: c2, Role: models.RoleLivreur})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{o1.ID: true, o3.ID: true}, ids(c2View))

	ownerView, err := engine.VisibleOrders(ctx, Actor{ID: "boss", Role: models.RoleOwner})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{o1.ID: true, o2.ID: true, o3.ID: true}, ids(ownerView))

	clientView, err := engine.VisibleOrders(ctx, Actor{ID: client, Role: models.RoleClient})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{o3.ID: true}, ids(clientView))

	otherView, err := engine.VisibleOrders(ctx, Actor{ID: "u2", Role: models.RoleClient})
	require.NoError(t, err)
	require.Empty(t, otherView)
}

func TestGuestSeesNothing(t *testing.T) {
	engine, repo := newEngine(t)
	seedOrder(t, repo, models.Order{Status: models.StatusPending})

	view, err := engine.VisibleOrders(context.Background(), Actor{Role: models.RoleClient})
	require.NoError(t, err)
	require.Empty(t, view)
}

func TestCourierViewDeduplicates(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)

	c1 := "c1"
	// pending AND already assigned to the courier: appears in both source
	// sets, must be listed exactly once
	o := seedOrder(t, repo, models.Order{Status: models.StatusPending, LivreurID: &c1})

	view, err := engine.VisibleOrders(ctx, Actor{ID: c1, Role: models.RoleLivreur})
	require.NoError(t, err)
	require.Len(t, view, 1)
	require.Equal(t, o.ID, view[0].ID)
}

func TestFirstClaimAssignsCourier(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)
	o := seedOrder(t, repo, models.Order{Status: models.StatusPending})

	updated, err := engine.UpdateStatus(ctx, Actor{ID: "c1", Role: models.RoleLivreur}, o.ID, models.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, updated.Status)
	require.NotNil(t, updated.LivreurID)
	require.Equal(t, "c1", *updated.LivreurID)
}

func TestClaimIsSticky(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)
	o := seedOrder(t, repo, models.Order{Status: models.StatusPending})

	_, err := engine.UpdateStatus(ctx, Actor{ID: "c1", Role: models.RoleLivreur}, o.ID, models.StatusConfirmed)
	require.NoError(t, err)

	// a second courier re-confirming cannot steal the assignment
	_, err = engine.UpdateStatus(ctx, Actor{ID: "c2", Role: models.RoleLivreur}, o.ID, models.StatusConfirmed)
	require.Error(t, err)

	after, err := repo.Order(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "c1", *after.LivreurID)
}

// staleRepo returns an outdated unassigned view of an order, simulating the
// window between a courier's read and write while another courier claims.
type staleRepo struct {
	*repository.Store
	staleID string
}

func (r *staleRepo) Order(ctx context.Context, id string) (models.Order, error) {
	o, err := r.Store.Order(ctx, id)
	if err == nil && id == r.staleID {
		o.LivreurID = nil
		o.Status = models.StatusPending
	}
	return o, err
}

func TestLostClaimRaceKeepsWinner(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(docstore.NewMemStore())
	c1 := "c1"
	o, err := repo.CreateOrder(ctx, models.Order{Status: models.StatusPending, LivreurID: &c1})
	require.NoError(t, err)

	engine := NewEngine(&staleRepo{Store: repo, staleID: o.ID})
	updated, err := engine.UpdateStatus(ctx, Actor{ID: "c2", Role: models.RoleLivreur}, o.ID, models.StatusConfirmed)
	require.NoError(t, err)

	// status landed, the winning courier's claim did not move
	require.Equal(t, models.StatusConfirmed, updated.Status)
	require.NotNil(t, updated.LivreurID)
	require.Equal(t, c1, *updated.LivreurID)
}

func TestClientCannotUpdateStatus(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)
	o := seedOrder(t, repo, models.Order{Status: models.StatusPending})

	_, err := engine.UpdateStatus(ctx, Actor{ID: "u1", Role: models.RoleClient}, o.ID, models.StatusConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	after, err := repo.Order(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, after.Status)
	require.Nil(t, after.LivreurID)
}

func TestUpdateStatusNotFound(t *testing.T) {
	engine, _ := newEngine(t)
	_, err := engine.UpdateStatus(context.Background(), Actor{ID: "boss", Role: models.RoleOwner}, "missing", models.StatusConfirmed)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInvalidTransitionRejected(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)
	o := seedOrder(t, repo, models.Order{Status: models.StatusPending})

	_, err := engine.UpdateStatus(ctx, Actor{ID: "boss", Role: models.RoleOwner}, o.ID, models.StatusDelivered)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, models.StatusPending, invalid.From)

	after, err := repo.Order(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, after.Status)
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	engine, repo := newEngine(t)
	o := seedOrder(t, repo, models.Order{
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	})

	updated, err := engine.UpdateStatus(ctx, Actor{ID: "boss", Role: models.RoleOwner}, o.ID, models.StatusConfirmed)
	require.NoError(t, err)
	require.True(t, updated.UpdatedAt.After(o.UpdatedAt))
	require.True(t, updated.CreatedAt.Equal(o.CreatedAt))
}
