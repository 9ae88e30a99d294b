//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/shared"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// In-memory unit of work: the callback runs against stub repositories, so
// these tests cover the command orchestration without a database.

type fakeReservationRepo struct {
	inserted   []*reservation.Reservation
	insertErrs []error // consumed per Insert call; nil entries mean success
	stays      []reservation.Stay
	staysErr   error
	statusErr  error
	deleteErr  error
}

func (f *fakeReservationRepo) Insert(_ context.Context, res *reservation.Reservation) error {
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	f.inserted = append(f.inserted, res)
	return nil
}

func (f *fakeReservationRepo) StaysForRoom(_ context.Context, _ uuid.UUID) ([]reservation.Stay, error) {
	return f.stays, f.staysErr
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ reservation.Status) error {
	return f.statusErr
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeReservationRepo) FindByID(_ context.Context, _ uuid.UUID) (*reservation.Reservation, error) {
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (f *fakeReservationRepo) CountCreatedBetween(_ context.Context, _, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeReservationRepo) CountActiveCovering(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeRoomRepo struct {
	room *room.Room
	err  error
}

func (f *fakeRoomRepo) FindByID(_ context.Context, _ uuid.UUID) (*room.Room, error) {
	return f.room, f.err
}

func (f *fakeRoomRepo) Count(_ context.Context) (int64, error) { return 1, nil }

type fakeCustomerRepo struct {
	customer *customer.Customer
	err      error
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, _ uuid.UUID) (*customer.Customer, error) {
	return f.customer, f.err
}

type fakeTx struct {
	reservations *fakeReservationRepo
	rooms        *fakeRoomRepo
	customers    *fakeCustomerRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Rooms() shared.RoomRepository               { return t.rooms }
func (t *fakeTx) Customers() shared.CustomerRepository       { return t.customers }
func (t *fakeTx) Payments() shared.PaymentRepository         { return nil }
func (t *fakeTx) Users() shared.UserRepository               { return nil }
func (t *fakeTx) Analytics() shared.AnalyticsRepository      { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func testFixtures(t *testing.T) (*fakeTx, reqdto.CreateReservationRequest) {
	t.Helper()

	roomEntity, err := room.NewRoom("Seaside Double", 18900, room.TypeDouble)
	require.NoError(t, err)
	customerEntity, err := customer.New("Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	tx := &fakeTx{
		reservations: &fakeReservationRepo{},
		rooms:        &fakeRoomRepo{room: roomEntity},
		customers:    &fakeCustomerRepo{customer: customerEntity},
	}
	req := reqdto.CreateReservationRequest{
		RoomID:     roomEntity.ID(),
		RoomType:   "Double",
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-12",
		CustomerID: customerEntity.ID(),
		Guests:     2,
	}
	return tx, req
}

func newCommands(t *testing.T, tx *fakeTx) (commands.ReservationCommands, *queriesmock.MockReservationQueries) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockReservationQueries(ctrl)
	return commands.NewReservationCommands(&fakeUoW{tx: tx}, mockQueries), mockQueries
}

func TestCreateReservation(t *testing.T) {
	t.Run("happy path inserts once and returns the stored view", func(t *testing.T) {
		tx, req := testFixtures(t)
		cmd, mockQueries := newCommands(t, tx)
		mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		_, err := cmd.Create(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, tx.reservations.inserted, 1)
		stored := tx.reservations.inserted[0]
		assert.Equal(t, reservation.StatusConfirmed, stored.Status())
		assert.Equal(t, req.CustomerID, stored.CustomerID())
	})

	t.Run("malformed dates never reach the transaction", func(t *testing.T) {
		tx, req := testFixtures(t)
		cmd, _ := newCommands(t, tx)
		req.CheckOut = req.CheckIn // zero nights

		_, err := cmd.Create(context.Background(), req)

		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.Empty(t, tx.reservations.inserted)
	})

	t.Run("unknown room maps to ErrRoomNotFound", func(t *testing.T) {
		tx, req := testFixtures(t)
		tx.rooms.room = nil
		tx.rooms.err = notFoundErr("room not found")
		cmd, _ := newCommands(t, tx)

		_, err := cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("unknown customer maps to ErrCustomerNotFound", func(t *testing.T) {
		tx, req := testFixtures(t)
		tx.customers.customer = nil
		tx.customers.err = notFoundErr("customer not found")
		cmd, _ := newCommands(t, tx)

		_, err := cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
	})

	t.Run("declared type mismatch persists nothing", func(t *testing.T) {
		tx, req := testFixtures(t)
		req.RoomType = "Single"
		cmd, _ := newCommands(t, tx)

		_, err := cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrRoomTypeMismatch)
		assert.Empty(t, tx.reservations.inserted)
	})

	t.Run("overlapping stay persists nothing", func(t *testing.T) {
		tx, req := testFixtures(t)
		blocking, err := reservation.NewStay(
			time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		tx.reservations.stays = []reservation.Stay{blocking}
		cmd, _ := newCommands(t, tx)

		_, err = cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Empty(t, tx.reservations.inserted)
	})

	t.Run("number collision triggers a redraw", func(t *testing.T) {
		tx, req := testFixtures(t)
		tx.reservations.insertErrs = []error{
			infra.WrapRepoErr("duplicate number", nil, infra.KindDuplicateKey),
			nil,
		}
		cmd, mockQueries := newCommands(t, tx)
		mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		_, err := cmd.Create(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, tx.reservations.inserted, 1)
	})

	t.Run("exhausted redraws give up with ErrNumberExhausted", func(t *testing.T) {
		tx, req := testFixtures(t)
		dup := infra.WrapRepoErr("duplicate number", nil, infra.KindDuplicateKey)
		tx.reservations.insertErrs = []error{dup, dup, dup, dup, dup}
		cmd, _ := newCommands(t, tx)

		_, err := cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrNumberExhausted)
		assert.Empty(t, tx.reservations.inserted)
	})

	t.Run("exclusion violation on insert reads as unavailable", func(t *testing.T) {
		// A concurrent booking can land between the in-tx check and the
		// insert; the storage constraint reports it as a conflict.
		tx, req := testFixtures(t)
		tx.reservations.insertErrs = []error{
			infra.WrapRepoErr("overlapping stay", nil, infra.KindConflict),
		}
		cmd, _ := newCommands(t, tx)

		_, err := cmd.Create(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Empty(t, tx.reservations.inserted)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	t.Run("invalid status maps to ErrDomainValidation", func(t *testing.T) {
		tx, _ := testFixtures(t)
		cmd, _ := newCommands(t, tx)

		_, err := cmd.UpdateStatus(context.Background(), uuid.New(),
			reqdto.UpdateReservationStatusRequest{Status: "Archived"})

		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("unknown reservation maps to ErrReservationNotFound", func(t *testing.T) {
		tx, _ := testFixtures(t)
		tx.reservations.statusErr = notFoundErr("reservation not found")
		cmd, _ := newCommands(t, tx)

		_, err := cmd.UpdateStatus(context.Background(), uuid.New(),
			reqdto.UpdateReservationStatusRequest{Status: "Cancelled"})

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("un-cancelling into a taken slot reads as unavailable", func(t *testing.T) {
		tx, _ := testFixtures(t)
		tx.reservations.statusErr = infra.WrapRepoErr("overlapping stay", nil, infra.KindConflict)
		cmd, _ := newCommands(t, tx)

		_, err := cmd.UpdateStatus(context.Background(), uuid.New(),
			reqdto.UpdateReservationStatusRequest{Status: "Confirmed"})

		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("unknown reservation maps to ErrReservationNotFound", func(t *testing.T) {
		tx, _ := testFixtures(t)
		tx.reservations.deleteErr = notFoundErr("reservation not found")
		cmd, _ := newCommands(t, tx)

		err := cmd.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("delete passes through on success", func(t *testing.T) {
		tx, _ := testFixtures(t)
		cmd, _ := newCommands(t, tx)

		err := cmd.Delete(context.Background(), uuid.New())

		assert.NoError(t, err)
	})
}
