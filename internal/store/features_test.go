package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-backend/internal/model"
)

func TestResolveComplaint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	c := model.Complaint{StudentID: alice.ID, ComplaintType: "electrical", Description: "no power in room", Priority: "high", Status: model.ComplaintOpen}
	require.NoError(t, s.DB().Create(&c).Error)

	resolved, err := s.ResolveComplaint(ctx, c.ID, "fuse replaced")
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintResolved, resolved.Status)
	assert.Equal(t, "fuse replaced", resolved.Resolution)
	require.NotNil(t, resolved.ResolvedAt)

	_, err = s.ResolveComplaint(ctx, c.ID, "again")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.ResolveComplaint(ctx, 9999, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecideLeave(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	l := model.LeaveRequest{StudentID: alice.ID, FromDate: date(2026, 9, 10), ToDate: date(2026, 9, 12), Reason: "family function", Status: model.LeavePending}
	require.NoError(t, s.DB().Create(&l).Error)

	approved, err := s.DecideLeave(ctx, l.ID, true, 42)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.EqualValues(t, 42, *approved.DecidedBy)
	require.NotNil(t, approved.DecidedAt)

	// Decisions are final.
	_, err = s.DecideLeave(ctx, l.ID, false, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	l2 := model.LeaveRequest{StudentID: alice.ID, FromDate: date(2026, 9, 20), ToDate: date(2026, 9, 21), Reason: "exam", Status: model.LeavePending}
	require.NoError(t, s.DB().Create(&l2).Error)
	rejected, err := s.DecideLeave(ctx, l2.ID, false, 42)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveRejected, rejected.Status)
}

func TestCheckoutVisitorOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	v := model.Visitor{StudentID: alice.ID, VisitorName: "S. Kumar", Relation: "father", VisitDate: date(2026, 8, 15), InTime: time.Now().UTC()}
	require.NoError(t, s.DB().Create(&v).Error)

	out, err := s.CheckoutVisitor(ctx, v.ID, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, out.OutTime)

	_, err = s.CheckoutVisitor(ctx, v.ID, time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReturnGateEntryOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	g := model.GateEntry{StudentID: alice.ID, Date: date(2026, 8, 15), OutTime: time.Now().UTC(), Purpose: "market"}
	require.NoError(t, s.DB().Create(&g).Error)

	back, err := s.ReturnGateEntry(ctx, g.ID, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, back.InTime)

	_, err = s.ReturnGateEntry(ctx, g.ID, time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBulkMessAttendanceAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	bala := seedStudent(t, s, "Bala")
	day := date(2026, 8, 15)

	rows := []model.MessAttendance{
		{StudentID: alice.ID, Date: day, MealType: model.MealLunch, Status: "present"},
		{StudentID: bala.ID, Date: day, MealType: model.MealLunch, Status: "absent"},
	}
	require.NoError(t, s.BulkMessAttendance(ctx, rows))

	// One duplicate poisons the whole batch; nothing is written.
	again := []model.MessAttendance{
		{StudentID: bala.ID, Date: day, MealType: model.MealDinner, Status: "present"},
		{StudentID: alice.ID, Date: day, MealType: model.MealLunch, Status: "present"},
	}
	assert.ErrorIs(t, s.BulkMessAttendance(ctx, again), ErrDuplicate)

	var count int64
	require.NoError(t, s.DB().Model(&model.MessAttendance{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	require.NoError(t, s.BulkMessAttendance(ctx, nil))
}

func TestBulkStudentAttendance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	day := date(2026, 8, 15)

	require.NoError(t, s.BulkStudentAttendance(ctx, []model.StudentAttendance{
		{StudentID: alice.ID, Date: day, Status: "present", MarkedBy: 1},
	}))
	assert.ErrorIs(t, s.BulkStudentAttendance(ctx, []model.StudentAttendance{
		{StudentID: alice.ID, Date: day, Status: "absent", MarkedBy: 1},
	}), ErrDuplicate)
}

func TestCreatePayment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	rent := model.Fee{FeeType: "hostel_rent", Amount: 4500, Frequency: "monthly", IsActive: true}
	require.NoError(t, s.DB().Create(&rent).Error)

	p := model.Payment{StudentID: alice.ID, FeeID: rent.ID, AmountPaid: 4500, PaymentDate: date(2026, 8, 5), PaymentMode: "upi"}
	require.NoError(t, s.CreatePayment(ctx, &p))
	assert.NotEmpty(t, p.ReceiptNo)
	assert.Equal(t, "completed", p.Status)

	// Inactive fee heads take no payments.
	old := model.Fee{FeeType: "old_mess", Amount: 2000, Frequency: "monthly", IsActive: false}
	require.NoError(t, s.DB().Create(&old).Error)
	var stored model.Fee
	require.NoError(t, s.DB().First(&stored, old.ID).Error)
	require.False(t, stored.IsActive)
	err := s.CreatePayment(ctx, &model.Payment{StudentID: alice.ID, FeeID: old.ID, AmountPaid: 2000, PaymentDate: date(2026, 8, 5), PaymentMode: "cash"})
	assert.ErrorIs(t, err, ErrFeeInactive)

	err = s.CreatePayment(ctx, &model.Payment{StudentID: 9999, FeeID: rent.ID, AmountPaid: 10, PaymentDate: date(2026, 8, 5), PaymentMode: "cash"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedStudent(t, s, "Alice")
	bala := seedStudent(t, s, "Bala")
	rent := model.Fee{FeeType: "hostel_rent", Amount: 4500, Frequency: "monthly", IsActive: true}
	mess := model.Fee{FeeType: "mess", Amount: 2500, Frequency: "monthly", IsActive: true}
	require.NoError(t, s.DB().Create(&rent).Error)
	require.NoError(t, s.DB().Create(&mess).Error)

	for _, p := range []model.Payment{
		{StudentID: alice.ID, FeeID: rent.ID, AmountPaid: 4500, PaymentDate: date(2026, 8, 1), PaymentMode: "upi"},
		{StudentID: bala.ID, FeeID: rent.ID, AmountPaid: 4500, PaymentDate: date(2026, 8, 2), PaymentMode: "cash"},
		{StudentID: alice.ID, FeeID: mess.ID, AmountPaid: 2500, PaymentDate: date(2026, 8, 3), PaymentMode: "upi"},
	} {
		p := p
		require.NoError(t, s.CreatePayment(ctx, &p))
	}

	rows, err := s.PaymentSummary(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hostel_rent", rows[0].FeeType)
	assert.EqualValues(t, 2, rows[0].PaymentCount)
	assert.InDelta(t, 9000, rows[0].TotalPaid, 0.001)
	assert.Equal(t, "mess", rows[1].FeeType)
	assert.InDelta(t, 2500, rows[1].TotalPaid, 0.001)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.RegisterUser(ctx, "warden1", "s3cret", model.RoleWarden)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	_, err = s.RegisterUser(ctx, "warden1", "other", model.RoleWarden)
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := s.Authenticate(ctx, "warden1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, "warden1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts fail the same way.
	require.NoError(t, s.DB().Model(&model.User{}).Where("id = ?", u.ID).Update("active", false).Error)
	_, err = s.Authenticate(ctx, "warden1", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "changeme"))
	got, err := s.Authenticate(ctx, "admin", "changeme")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)

	// Second start is a no-op, not a duplicate error.
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "changeme"))

	var count int64
	require.NoError(t, s.DB().Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
