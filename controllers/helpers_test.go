package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/models"
)

func ownershipTestContext(t *testing.T, userID uint, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, w
}

func TestRequireSelfOrAdminAllowsOwner(t *testing.T) {
	c, _ := ownershipTestContext(t, 5, string(models.RoleConsultant))
	if !requireSelfOrAdmin(c, 5) {
		t.Fatal("expected a consultant to access their own records")
	}
}

func TestRequireSelfOrAdminAllowsAdmin(t *testing.T) {
	c, _ := ownershipTestContext(t, 1, string(models.RoleAdmin))
	if !requireSelfOrAdmin(c, 99) {
		t.Fatal("expected an admin to access any user's records")
	}
}

func TestRequireSelfOrAdminRejectsOtherConsultant(t *testing.T) {
	c, w := ownershipTestContext(t, 5, string(models.RoleConsultant))
	if requireSelfOrAdmin(c, 6) {
		t.Fatal("expected a consultant to be rejected for another user's records")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

// ownershipTestRouter runs handlers behind a stub auth context so the
// ownership check can be exercised without a database. The check runs before
// any query, so the nil DB handle is never touched on the rejected path.
func ownershipTestRouter(userID uint, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("db", (*gorm.DB)(nil))
		c.Set("user_id", userID)
		c.Set("role", role)
	})
	return r
}

func TestAttendanceSummaryForbiddenForOtherUser(t *testing.T) {
	r := ownershipTestRouter(1, string(models.RoleConsultant))
	r.GET("/attendance/summary/:user_id", GetAttendanceSummary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/attendance/summary/2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestConsultantDashboardForbiddenForOtherUser(t *testing.T) {
	r := ownershipTestRouter(1, string(models.RoleConsultant))
	r.GET("/dashboard/consultant/:user_id", ConsultantDashboard)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/consultant/2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}
