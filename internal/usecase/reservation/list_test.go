package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
)

func TestListMineScopesByPrincipal(t *testing.T) {
	store := memory.New()
	shopA := newShop(store, "monday", "friday")
	shopB := newShop(store, "monday")
	book := NewBook(store, at(wednesdayNight), nil, nil)
	ctx := context.Background()

	for _, in := range []BookInput{
		{Principal: client, BarbershopID: shopA.ID, Weekday: "friday", SlotNumber: 2},
		{Principal: client, BarbershopID: shopA.ID, Weekday: "monday", SlotNumber: 1},
		{Principal: otherClient, BarbershopID: shopB.ID, Weekday: "monday", SlotNumber: 1},
	} {
		_, err := book.Execute(ctx, in)
		require.NoError(t, err)
	}

	uc := NewListMine(store, at(wednesdayNight))

	mine, err := uc.Execute(ctx, client)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2026-10-16", mine[0].Date)
	assert.Equal(t, "friday", mine[0].Weekday)
	assert.Equal(t, "09:00 - 10:00", mine[0].TimeRange)
	assert.Equal(t, "2026-10-19", mine[1].Date)

	shopView, err := uc.Execute(ctx, ownerOf(shopB))
	require.NoError(t, err)
	require.Len(t, shopView, 1)
	assert.Equal(t, otherClient.UserID, shopView[0].ClientID)

	all, err := uc.Execute(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.Execute(ctx, domain.Principal{UserID: 3, Kind: "guest"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAvailabilityRotatesFromToday(t *testing.T) {
	store := memory.New()
	shop := newShop(store, "monday", "wednesday", "friday")
	shop.MaxSlotsPerDay = 4
	shop.ClosingTime = "12:00"
	store.PutBarbershop(shop)

	_, err := NewBook(store, at(wednesdayNight), nil, nil).Execute(context.Background(), BookInput{
		Principal: client, BarbershopID: shop.ID, Weekday: "friday", SlotNumber: 2,
	})
	require.NoError(t, err)

	days, err := NewListAvailability(store, at(wednesdayNight)).Execute(context.Background(), shop.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "wednesday", days[0].Weekday)
	assert.Equal(t, "2026-10-14", days[0].Date)
	assert.Equal(t, "friday", days[1].Weekday)
	assert.Equal(t, "monday", days[2].Weekday)
	assert.Equal(t, "2026-10-19", days[2].Date)

	require.Len(t, days[0].Slots, 4)
	assert.Equal(t, "08:00 - 09:00", days[0].Slots[0].TimeRange)

	friday := days[1].Slots
	require.Len(t, friday, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{friday[0].SlotNumber, friday[1].SlotNumber, friday[2].SlotNumber})
}

func TestAvailabilityKeepsConfiguredOrderOffDay(t *testing.T) {
	store := memory.New()
	shop := newShop(store, "friday", "monday")

	days, err := NewListAvailability(store, at(wednesdayNight)).Execute(context.Background(), shop.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "friday", days[0].Weekday)
	assert.Equal(t, "monday", days[1].Weekday)
}

func TestAvailabilityUnknownShop(t *testing.T) {
	_, err := NewListAvailability(memory.New(), at(wednesdayNight)).Execute(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrBarbershopNotFound)
}
