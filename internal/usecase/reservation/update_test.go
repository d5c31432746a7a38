package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

func ptr[T any](v T) *T { return &v }

func bookedFixture(t *testing.T) (*memory.Store, models.Barbershop, *models.Reservation) {
	t.Helper()
	store := memory.New()
	shop := newShop(store, "monday", "wednesday", "friday")
	r, err := NewBook(store, at(wednesdayNight), nil, nil).Execute(context.Background(), BookInput{
		Principal: client, BarbershopID: shop.ID, Weekday: "monday", SlotNumber: 3,
	})
	require.NoError(t, err)
	return store, shop, r
}

func TestUpdateSlotOutOfRangeLeavesRowUntouched(t *testing.T) {
	store, _, r := bookedFixture(t)
	uc := NewUpdate(store, at(wednesdayNight), nil)

	_, err := uc.Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, SlotNumber: ptr(13), Weekday: ptr("friday"),
	})
	assert.ErrorIs(t, err, schedule.ErrSlotOutOfRange)

	stored, err := store.GetReservation(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.SlotNumber)
	assert.Equal(t, r.Date, stored.Date)
}

func TestUpdateMovesDateAndSlot(t *testing.T) {
	store, _, r := bookedFixture(t)
	uc := NewUpdate(store, at(wednesdayNight), nil)

	updated, err := uc.Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, SlotNumber: ptr(8), Weekday: ptr("friday"),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.SlotNumber)
	assert.Equal(t, date("2026-10-16"), updated.Date)

	stored, _ := store.GetReservation(context.Background(), r.ID)
	assert.Equal(t, date("2026-10-16"), stored.Date)
}

func TestUpdateNoOpDoesNotCollideWithItself(t *testing.T) {
	store, _, r := bookedFixture(t)

	_, err := NewUpdate(store, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, SlotNumber: ptr(3), Weekday: ptr("monday"),
	})
	assert.NoError(t, err)
}

func TestUpdateIntoTakenSlot(t *testing.T) {
	store, shop, r := bookedFixture(t)
	_, err := NewBook(store, at(wednesdayNight), nil, nil).Execute(context.Background(), BookInput{
		Principal: otherClient, BarbershopID: shop.ID, Weekday: "friday", SlotNumber: 3,
	})
	require.NoError(t, err)

	_, err = NewUpdate(store, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, Weekday: ptr("friday"),
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestUpdateToTodayAfterClosing(t *testing.T) {
	store, _, r := bookedFixture(t)

	_, err := NewUpdate(store, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, Weekday: ptr("wednesday"),
	})
	assert.ErrorIs(t, err, domain.ErrPastClosingToday)
}

func TestUpdateRejectsNonWorkingDay(t *testing.T) {
	store, _, r := bookedFixture(t)

	_, err := NewUpdate(store, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, Weekday: ptr("sunday"),
	})
	assert.ErrorIs(t, err, domain.ErrNotWorkingDay)
}

func TestUpdateImmutableFields(t *testing.T) {
	store, shop, r := bookedFixture(t)
	uc := NewUpdate(store, at(wednesdayNight), nil)

	_, err := uc.Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, BarbershopID: ptr(shop.ID + 1),
	})
	require.ErrorIs(t, err, domain.ErrImmutableField)
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, "barbershop_id", be.Field)

	_, err = uc.Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, ClientID: ptr(otherClient.UserID),
	})
	require.ErrorIs(t, err, domain.ErrImmutableField)
	be, _ = httperr.AsBusiness(err)
	assert.Equal(t, "client_id", be.Field)

	// repetir o valor atual não é alteração
	_, err = uc.Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, BarbershopID: ptr(shop.ID), ClientID: ptr(client.UserID),
	})
	assert.NoError(t, err)
}

func TestUpdateAccessControl(t *testing.T) {
	store, shop, r := bookedFixture(t)
	uc := NewUpdate(store, at(wednesdayNight), nil)

	_, err := uc.Execute(context.Background(), UpdateInput{Principal: otherClient, ReservationID: r.ID, SlotNumber: ptr(4)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Execute(context.Background(), UpdateInput{Principal: ownerOf(shop), ReservationID: r.ID, SlotNumber: ptr(4)})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), UpdateInput{Principal: admin, ReservationID: r.ID, SlotNumber: ptr(5)})
	assert.NoError(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	store, _, r := bookedFixture(t)
	uc := NewUpdate(store, at(wednesdayNight), nil)

	updated, err := uc.Execute(context.Background(), UpdateInput{Principal: client, ReservationID: r.ID, Status: ptr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.NotNil(t, updated.CancelledAt)

	_, err = uc.Execute(context.Background(), UpdateInput{Principal: client, ReservationID: r.ID, Status: ptr("reserved")})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.Execute(context.Background(), UpdateInput{Principal: client, ReservationID: r.ID, Status: ptr("done")})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestUpdateLostRaceIsSlotTaken(t *testing.T) {
	store, shop, r := bookedFixture(t)
	_, err := NewBook(store, at(wednesdayNight), nil, nil).Execute(context.Background(), BookInput{
		Principal: otherClient, BarbershopID: shop.ID, Weekday: "monday", SlotNumber: 4,
	})
	require.NoError(t, err)

	_, err = NewUpdate(racingRepo{store}, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: client, ReservationID: r.ID, SlotNumber: ptr(4),
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestUpdateUnknownReservation(t *testing.T) {
	store, _, _ := bookedFixture(t)
	_, err := NewUpdate(store, at(wednesdayNight), nil).Execute(context.Background(), UpdateInput{
		Principal: admin, ReservationID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}
