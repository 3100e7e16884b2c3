package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hostel-admin-backend/config"
	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/mw"
	"hostel-admin-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, &cfg.Auth)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	authed := mw.Auth(s.DB(), cfg.Auth.JWTSecret)
	staff := mw.RequireRoles(model.RoleWarden)
	adminOnly := mw.RequireRoles(model.RoleAdmin)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(rateLimiter)

	// Public endpoints
	api.POST("/auth/register", handler.Register)
	api.POST("/auth/login", handler.Login)

	// Everything below requires a valid token; mutations are audited.
	auth := api.Group("")
	auth.Use(authed, mw.Audit(s))
	{
		auth.GET("/auth/me", handler.Me)
		auth.POST("/users", adminOnly, handler.CreateUser)

		// Students
		auth.POST("/students", staff, handler.CreateStudent)
		auth.GET("/students", handler.ListStudents)
		auth.GET("/students/course/:course", handler.StudentsByCourse)
		auth.GET("/students/:id", handler.GetStudent)
		auth.PUT("/students/:id", staff, handler.UpdateStudent)
		auth.DELETE("/students/:id", adminOnly, handler.DeleteStudent)

		// Hostels
		auth.POST("/hostels", staff, handler.CreateHostel)
		auth.GET("/hostels", handler.ListHostels)
		auth.GET("/hostels/type/:type", handler.HostelsByType)
		auth.GET("/hostels/:id", handler.GetHostel)
		auth.GET("/hostels/:id/rooms", handler.HostelRooms)
		auth.PUT("/hostels/:id", staff, handler.UpdateHostel)
		auth.DELETE("/hostels/:id", adminOnly, handler.DeleteHostel)

		// Rooms
		auth.POST("/rooms", staff, handler.CreateRoom)
		auth.GET("/rooms", handler.ListRooms)
		auth.GET("/rooms/:id", handler.GetRoom)
		auth.GET("/rooms/:id/beds", handler.RoomBeds)
		auth.PUT("/rooms/:id", staff, handler.UpdateRoom)
		auth.PATCH("/rooms/:id/status", staff, handler.SetRoomStatus)
		auth.DELETE("/rooms/:id", adminOnly, handler.DeleteRoom)

		// Beds
		auth.GET("/beds", handler.ListBeds)
		auth.GET("/beds/available", handler.AvailableBeds)
		auth.GET("/beds/:id", handler.GetBed)
		auth.DELETE("/beds/:id", adminOnly, handler.DeleteBed)

		// Allocations
		auth.POST("/allocations/allocate", staff, handler.Allocate)
		auth.GET("/allocations", handler.ListAllocations)
		auth.GET("/allocations/stats", caching, handler.OccupancyStats)
		auth.GET("/allocations/history", handler.AllocationHistory)
		auth.GET("/allocations/student/:student_id", handler.AllocationByStudent)
		auth.GET("/allocations/room/:room_id", handler.AllocationsByRoom)
		auth.GET("/allocations/hostel/:hostel_id", handler.AllocationsByHostel)
		auth.GET("/allocations/:id", handler.GetAllocation)
		auth.PUT("/allocations/:id/vacate", staff, handler.Vacate)
		auth.PUT("/allocations/:id", staff, handler.Reassign)

		// Fees and payments
		auth.POST("/fees", staff, handler.CreateFee)
		auth.GET("/fees", handler.ListFees)
		auth.GET("/fees/active", handler.ActiveFees)
		auth.GET("/fees/:id", handler.GetFee)
		auth.PUT("/fees/:id", staff, handler.UpdateFee)
		auth.POST("/fees/:id/activate", staff, handler.SetFeeActive(true))
		auth.POST("/fees/:id/deactivate", staff, handler.SetFeeActive(false))
		auth.DELETE("/fees/:id", adminOnly, handler.DeleteFee)
		auth.POST("/payments", staff, handler.CreatePayment)
		auth.GET("/payments", handler.ListPayments)
		auth.GET("/payments/summary", caching, handler.PaymentSummary)
		auth.GET("/payments/student/:student_id", handler.PaymentsByStudent)

		// Mess and menus
		auth.POST("/messes", staff, handler.CreateMess)
		auth.GET("/messes", handler.ListMesses)
		auth.POST("/menus", staff, handler.CreateMenu)
		auth.GET("/menus", handler.ListMenus)
		auth.GET("/menus/mess/:mess_id/weekly", caching, handler.WeeklyMenu)
		auth.GET("/menus/mess/:mess_id/today", caching, handler.TodaysMenu)
		auth.PUT("/menus/:id", staff, handler.UpdateMenu)
		auth.DELETE("/menus/:id", staff, handler.DeleteMenu)

		// Attendance
		auth.POST("/attendance", staff, handler.CreateStudentAttendance)
		auth.POST("/attendance/bulk", staff, handler.BulkStudentAttendance)
		auth.GET("/attendance/date/:date", handler.StudentAttendanceByDate)
		auth.GET("/attendance/absent", handler.AbsentStudents)
		auth.GET("/attendance/student/:student_id", handler.StudentAttendanceByStudent)
		auth.POST("/mess-attendance", staff, handler.CreateMessAttendance)
		auth.POST("/mess-attendance/bulk", staff, handler.BulkMessAttendance)
		auth.GET("/mess-attendance/date/:date", handler.MessAttendanceByDate)
		auth.GET("/mess-attendance/student/:student_id", handler.MessAttendanceByStudent)

		// Complaints
		auth.POST("/complaints", handler.CreateComplaint)
		auth.GET("/complaints", handler.ListComplaints)
		auth.GET("/complaints/student/:student_id", handler.ComplaintsByStudent)
		auth.GET("/complaints/:id", handler.GetComplaint)
		auth.PATCH("/complaints/:id/status", staff, handler.UpdateComplaintStatus)
		auth.POST("/complaints/:id/resolve", staff, handler.ResolveComplaint)

		// Maintenance
		auth.POST("/maintenance", staff, handler.CreateMaintenanceTicket)
		auth.GET("/maintenance", handler.ListMaintenanceTickets)
		auth.GET("/maintenance/:id", handler.GetMaintenanceTicket)
		auth.POST("/maintenance/:id/assign", staff, handler.AssignMaintenanceTicket)
		auth.POST("/maintenance/:id/complete", staff, handler.CompleteMaintenanceTicket)

		// Visitors
		auth.POST("/visitors", staff, handler.CreateVisitor)
		auth.GET("/visitors", handler.ListVisitors)
		auth.GET("/visitors/current", handler.CurrentVisitors)
		auth.GET("/visitors/student/:student_id", handler.VisitorsByStudent)
		auth.POST("/visitors/:id/checkout", staff, handler.CheckoutVisitor)

		// Paying guests
		auth.POST("/guests", staff, handler.CreateGuest)
		auth.GET("/guests", handler.ListGuests)
		auth.GET("/guests/:id", handler.GetGuest)
		auth.PUT("/guests/:id", staff, handler.UpdateGuest)
		auth.DELETE("/guests/:id", adminOnly, handler.DeleteGuest)

		// Leave requests
		auth.POST("/leaves", handler.CreateLeave)
		auth.GET("/leaves", handler.ListLeaves)
		auth.GET("/leaves/student/:student_id", handler.LeavesByStudent)
		auth.GET("/leaves/:id", handler.GetLeave)
		auth.POST("/leaves/:id/approve", staff, handler.ApproveLeave)
		auth.POST("/leaves/:id/reject", staff, handler.RejectLeave)

		// Gate log
		auth.POST("/gate", staff, handler.CreateGateEntry)
		auth.GET("/gate", handler.ListGateEntries)
		auth.GET("/gate/out", handler.StudentsOut)
		auth.GET("/gate/student/:student_id", handler.GateEntriesByStudent)
		auth.POST("/gate/:id/return", staff, handler.ReturnGateEntry)

		// Audit trail
		auth.GET("/audit", adminOnly, handler.ListAuditLogs)
	}

	return r
}
