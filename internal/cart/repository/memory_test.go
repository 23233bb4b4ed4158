package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/aslanbek/storefront/internal/catalog/domain"
)

var monitor = catalogdomain.Product{ID: 3, Title: "Monitor", Price: 599.0}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewMemoryCartRepository()

	repo.AddItem("session-a", monitor)
	repo.AddItem("session-a", monitor)
	repo.AddItem("session-b", monitor)

	assert.Equal(t, 2, repo.GetView("session-a").TotalItems)
	assert.Equal(t, 1, repo.GetView("session-b").TotalItems)
	assert.Equal(t, 2, repo.SessionCount())
}

func TestGetViewUnknownSession(t *testing.T) {
	repo := NewMemoryCartRepository()

	view := repo.GetView("nobody")
	require.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalItems)
}

func TestEmptyCartsAreDropped(t *testing.T) {
	repo := NewMemoryCartRepository()

	repo.AddItem("s", monitor)
	require.Equal(t, 1, repo.SessionCount())

	repo.RemoveItem("s", monitor.ID)
	assert.Zero(t, repo.SessionCount())

	repo.AddItem("s", monitor)
	repo.UpdateQuantity("s", monitor.ID, -1)
	assert.Zero(t, repo.SessionCount())
}

func TestClearCart(t *testing.T) {
	repo := NewMemoryCartRepository()
	repo.AddItem("s", monitor)

	repo.ClearCart("s")

	assert.Zero(t, repo.SessionCount())
	assert.Empty(t, repo.GetView("s").Items)
}

func TestMutationsReturnTheFreshView(t *testing.T) {
	repo := NewMemoryCartRepository()

	view := repo.AddItem("s", monitor)
	assert.Equal(t, 1, view.TotalItems)

	view = repo.UpdateQuantity("s", monitor.ID, 2)
	assert.Equal(t, 3, view.TotalItems)
	assert.InDelta(t, 1797.0, view.TotalCost, 1e-9)

	view = repo.RemoveItem("s", monitor.ID)
	assert.Empty(t, view.Items)
}
