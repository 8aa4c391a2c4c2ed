//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"festivo/internal/domain/reservation"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var services = &reservation.Services{
	Clock: clock.NewMockClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)),
}

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	fields []string
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	pkg, err := builder.NewPackageBuilder().BuildDomain()
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder().With(tc.mutate)
			_, _, err := reservation.NewReservation(services, pkg, uuid.New(), b.BuildInput())

			if len(tc.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			fe, ok := errs.AsFieldErrors(err)
			require.True(t, ok, "expected field errors, got %v", err)
			for _, f := range tc.fields {
				assert.Contains(t, fe, f)
			}
		})
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("valid booking starts pending with package price", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		userID := uuid.New()

		res, cust, err := reservation.NewReservation(services, pkg, userID, builder.NewReservationBuilder().BuildInput())
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, reservation.PaymentStatusInProgress, res.PaymentStatus())
		assert.True(t, res.TotalAmount().Equal(pkg.BasePrice()))
		assert.True(t, res.IsOwnedBy(userID))
		assert.Equal(t, res.ID(), cust.ReservationID())
	})

	t.Run("customization captures catalog prices", func(t *testing.T) {
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		_, cust, err := reservation.NewReservation(services, pkg, uuid.New(), builder.NewReservationBuilder().BuildInput())
		require.NoError(t, err)

		require.Len(t, cust.SelectedFoods(), 2)
		for _, f := range cust.SelectedFoods() {
			assert.False(t, f.Price.IsZero(), "price for %s must come from the catalog", f.Name)
		}
	})

	t.Run("inactive package is rejected before field validation", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().BuildInactiveDomain()
		_, _, err := reservation.NewReservation(services, pkg, uuid.New(), builder.NewReservationBuilder().BuildInput())
		assert.ErrorIs(t, err, reservation.ErrPackageUnavailable)
	})

	t.Run("customer field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing full name", mutate: func(b *builder.ReservationBuilder) { b.FullName = "" }, fields: []string{"full_name"}},
			{name: "invalid email", mutate: func(b *builder.ReservationBuilder) { b.Email = "not-an-email" }, fields: []string{"email"}},
			{name: "missing contact number", mutate: func(b *builder.ReservationBuilder) { b.ContactNumber = "" }, fields: []string{"contact_number"}},
			{name: "missing address", mutate: func(b *builder.ReservationBuilder) { b.Address = "" }, fields: []string{"address"}},
			{
				name: "multiple failures reported together",
				mutate: func(b *builder.ReservationBuilder) {
					b.FullName = ""
					b.Email = ""
				},
				fields: []string{"full_name", "email"},
			},
		})
	})

	t.Run("event field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing event type", mutate: func(b *builder.ReservationBuilder) { b.EventType = "" }, fields: []string{"event_type"}},
			{name: "past event date", mutate: func(b *builder.ReservationBuilder) { b.EventDate = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }, fields: []string{"event_date"}},
			{name: "zero guest count", mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 }, fields: []string{"guest_count"}},
			{name: "missing venue", mutate: func(b *builder.ReservationBuilder) { b.Venue = "" }, fields: []string{"venue"}},
			{name: "nil event time is fine", mutate: func(b *builder.ReservationBuilder) { b.EventTime = nil }},
		})
	})

	t.Run("customization membership validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "unknown table", mutate: func(b *builder.ReservationBuilder) { b.SelectedTableType = "square" }, fields: []string{"selected_table_type"}},
			{name: "unknown chair", mutate: func(b *builder.ReservationBuilder) { b.SelectedChairType = "throne" }, fields: []string{"selected_chair_type"}},
			{name: "unknown food", mutate: func(b *builder.ReservationBuilder) { b.SelectedFoods = []string{"sisig"} }, fields: []string{"selected_foods"}},
			{name: "missing table", mutate: func(b *builder.ReservationBuilder) { b.SelectedTableType = "" }, fields: []string{"selected_table_type"}},
			{name: "empty foods allowed", mutate: func(b *builder.ReservationBuilder) { b.SelectedFoods = nil }},
		})
	})
}

func TestBudgetRule(t *testing.T) {
	newPackage := func(basePrice int64) *builder.PackageBuilder {
		return builder.NewPackageBuilder().With(func(pb *builder.PackageBuilder) {
			pb.BasePrice = decimal.NewFromInt(basePrice)
		})
	}

	t.Run("food total equal to budget passes", func(t *testing.T) {
		// lechon belly 8000 + pancit canton 1500 = 9500
		pkg, err := newPackage(9500).BuildDomain()
		require.NoError(t, err)
		_, _, err = reservation.NewReservation(services, pkg, uuid.New(), builder.NewReservationBuilder().BuildInput())
		assert.NoError(t, err)
	})

	t.Run("food total over budget fails on selected_foods", func(t *testing.T) {
		pkg, err := newPackage(9499).BuildDomain()
		require.NoError(t, err)
		_, _, err = reservation.NewReservation(services, pkg, uuid.New(), builder.NewReservationBuilder().BuildInput())
		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fe, "selected_foods")
	})

	t.Run("membership failures are reported before the budget check", func(t *testing.T) {
		pkg, err := newPackage(1).BuildDomain()
		require.NoError(t, err)
		b := builder.NewReservationBuilder().With(func(rb *builder.ReservationBuilder) {
			rb.SelectedTableType = "square"
		})
		_, _, err = reservation.NewReservation(services, pkg, uuid.New(), b.BuildInput())
		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fe, "selected_table_type")
		assert.NotContains(t, fe, "selected_foods")
	})
}

func TestStatusTransitions(t *testing.T) {
	build := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		res, _, err := reservation.NewReservation(services, pkg, uuid.New(), builder.NewReservationBuilder().BuildInput())
		require.NoError(t, err)
		return res
	}

	t.Run("approve from pending", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Approve())
		assert.Equal(t, reservation.StatusApproved, res.Status())
	})

	t.Run("decline from pending", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Decline())
		assert.Equal(t, reservation.StatusDeclined, res.Status())
	})

	t.Run("approve is not idempotent", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Approve())
		assert.ErrorIs(t, res.Approve(), reservation.ErrNotPending)
	})

	t.Run("declined reservation cannot be approved", func(t *testing.T) {
		res := build(t)
		require.NoError(t, res.Decline())
		assert.ErrorIs(t, res.Approve(), reservation.ErrNotPending)
		assert.Equal(t, reservation.StatusDeclined, res.Status())
	})
}
