package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	router := gin.New()
	protected := router.Group("", AuthMiddleware(jwtManager))
	protected.GET("/orders", RequireSection("orders"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": GetAdminID(c)})
	})
	protected.GET("/gst", RequireSection("gst"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/sales", RequireSection("sales"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/dashboard", RequireSection("dashboard"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtManager
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingAndMalformedTokens(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := doRequest(router, "/orders", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if w := doRequest(router, "/orders", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	other := utils.NewJWTManager("different-secret", time.Hour, 24*time.Hour)
	forged, err := other.GenerateAccessToken("admin-1", "a@b.com", true, "all", nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if w := doRequest(router, "/orders", forged); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong signing key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireSectionScopesSubAdmins(t *testing.T) {
	router, jwtManager := newTestRouter(t)

	// Orders sub-admin with the Orders capability: orders yes, gst no.
	token, err := jwtManager.GenerateAccessToken("sub-1", "ops@shop.test", false, enum.DepartmentOrders.String(), []string{"Orders", "Returns"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if w := doRequest(router, "/orders", token); w.Code != http.StatusOK {
		t.Errorf("orders section: status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := doRequest(router, "/gst", token); w.Code != http.StatusForbidden {
		t.Errorf("gst section: status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestSalesOnlySubAdminReachesSalesButNotDashboard(t *testing.T) {
	router, jwtManager := newTestRouter(t)

	token, err := jwtManager.GenerateAccessToken("sub-2", "fin@shop.test", false, enum.DepartmentFinance.String(), []string{"Sales Analytics"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if w := doRequest(router, "/sales", token); w.Code != http.StatusOK {
		t.Errorf("sales section: status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := doRequest(router, "/dashboard", token); w.Code != http.StatusForbidden {
		t.Errorf("dashboard section: status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequireSectionAllowsFullAdminEverywhere(t *testing.T) {
	router, jwtManager := newTestRouter(t)

	token, err := jwtManager.GenerateAccessToken("admin-1", "boss@shop.test", true, "all", nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	for _, path := range []string{"/orders", "/gst"} {
		if w := doRequest(router, path, token); w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}
