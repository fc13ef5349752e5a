// Package stubserver is an in-memory implementation of the backend REST
// surface, used to exercise the gateway and the end-to-end flows in tests.
// It signs real HS256 tokens and rejects authenticated routes with 401 the
// way the production backend does. Status transitions are not checked for
// legality here: the stub accepts any known status, mirroring the fact
// that legality is the real backend's concern, not the client's.
package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
)

type Server struct {
	e      *echo.Echo
	secret []byte
	store  *store
}

func New(secret string) *Server {
	s := &Server{
		e:      echo.New(),
		secret: []byte(secret),
		store:  newStore(),
	}
	s.e.HideBanner = true
	s.routes()
	return s
}

// Handler exposes the server for httptest.
func (s *Server) Handler() http.Handler { return s.e }

// SeedStaff registers an account directly, bypassing the signup route.
func (s *Server) SeedStaff(username, password, work string) domain.Staff {
	staff, _ := s.store.addAccount(domain.Staff{
		Name:     username,
		Username: username,
		Work:     work,
	}, password)
	return staff
}

// SeedMenuItem inserts a menu item directly.
func (s *Server) SeedMenuItem(item domain.MenuItem) domain.MenuItem {
	return s.store.addMenuItem(item)
}

// Orders returns a snapshot of all placed orders, for assertions.
func (s *Server) Orders() []domain.Order { return s.store.listOrders() }

func (s *Server) routes() {
	s.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.e.POST("/auth/login", s.login)
	s.e.POST("/auth/signup", s.signup)
	s.e.GET("/menu", s.listMenu)
	s.e.POST("/orders", s.createOrder)

	authed := s.e.Group("", s.auth)
	authed.POST("/menu", s.createMenuItem)
	authed.PUT("/menu/:id", s.updateMenuItem)
	authed.DELETE("/menu/:id", s.deleteMenuItem)
	authed.GET("/orders", s.listOrders)
	authed.PUT("/orders/:id", s.updateOrderStatus)
	authed.GET("/dashboard/stats", s.dashboardStats)
}

// auth validates the bearer token and injects claims into context.
func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	staff, ok := s.store.authenticate(req.Username, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
	}

	claims := jwt.MapClaims{
		"sub":      staff.ID,
		"username": staff.Username,
		"role":     staff.Work,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token signing failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (s *Server) signup(c echo.Context) error {
	var req struct {
		domain.Staff
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	created, ok := s.store.addAccount(req.Staff, req.Password)
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"message": "username already taken"})
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) listMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listMenu())
}

func (s *Server) createMenuItem(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	item.ID = ""
	return c.JSON(http.StatusCreated, s.store.addMenuItem(item))
}

func (s *Server) updateMenuItem(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated, ok := s.store.updateMenuItem(c.Param("id"), item)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "menu item not found"})
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteMenuItem(c echo.Context) error {
	if !s.store.deleteMenuItem(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "menu item not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createOrder(c echo.Context) error {
	var req struct {
		Items       []domain.OrderItem `json:"items"`
		TotalAmount float64            `json:"totalAmount"`
		TableNumber string             `json:"tableNumber"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if len(req.Items) == 0 || req.TableNumber == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "items and tableNumber are required"})
	}
	return c.JSON(http.StatusCreated, s.store.addOrder(req.Items, req.TotalAmount, req.TableNumber))
}

func (s *Server) listOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listOrders())
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "unknown status: " + req.Status})
	}
	order, ok := s.store.setOrderStatus(c.Param("id"), status)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "order not found"})
	}
	return c.JSON(http.StatusOK, order)
}

func (s *Server) dashboardStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.stats())
}
