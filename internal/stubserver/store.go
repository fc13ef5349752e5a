package stubserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
)

// account pairs the public staff record with its password hash.
type account struct {
	staff domain.Staff
	hash  []byte
}

// store is the in-memory state behind the stub backend. Menu and orders
// keep insertion order so list responses are deterministic.
type store struct {
	mu       sync.Mutex
	accounts map[string]account
	menu     []domain.MenuItem
	orders   []domain.Order
}

func newStore() *store {
	return &store{accounts: map[string]account{}}
}

func (s *store) addAccount(staff domain.Staff, password string) (domain.Staff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[staff.Username]; exists {
		return domain.Staff{}, false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return domain.Staff{}, false
	}
	staff.ID = uuid.NewString()
	staff.CreatedAt = time.Now().UTC()
	s.accounts[staff.Username] = account{staff: staff, hash: hash}
	return staff, true
}

func (s *store) authenticate(username, password string) (domain.Staff, bool) {
	s.mu.Lock()
	acc, ok := s.accounts[username]
	s.mu.Unlock()
	if !ok {
		return domain.Staff{}, false
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return domain.Staff{}, false
	}
	return acc.staff, true
}

func (s *store) listMenu() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

func (s *store) addMenuItem(item domain.MenuItem) domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.menu = append(s.menu, item)
	return item
}

func (s *store) updateMenuItem(id string, item domain.MenuItem) (domain.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			item.ID = id
			s.menu[i] = item
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *store) deleteMenuItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu = append(s.menu[:i], s.menu[i+1:]...)
			return true
		}
	}
	return false
}

func (s *store) addOrder(items []domain.OrderItem, total float64, table string) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := domain.Order{
		ID:          uuid.NewString(),
		Items:       items,
		TotalAmount: total,
		TableNumber: table,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.orders = append(s.orders, order)
	return order
}

func (s *store) listOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *store) setOrderStatus(id string, status domain.OrderStatus) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return domain.Order{}, false
}

func (s *store) stats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.DashboardStats{
		TotalOrders:    len(s.orders),
		TotalMenuItems: len(s.menu),
	}
	for _, o := range s.orders {
		if o.Status != domain.StatusCancelled {
			stats.TotalRevenue += o.TotalAmount
		}
	}
	return stats
}
