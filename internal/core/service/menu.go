package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// MenuManager serves both the public menu screen and the admin CRUD panel.
// Reads go over the public transport; mutations require the credential.
type MenuManager struct {
	gw  ports.Gateway
	log zerolog.Logger
}

func NewMenuManager(gw ports.Gateway, log zerolog.Logger) *MenuManager {
	return &MenuManager{gw: gw, log: log}
}

// All lists every menu item, including unavailable ones (admin view).
func (m *MenuManager) All(ctx context.Context) ([]domain.MenuItem, error) {
	return m.gw.ListMenu(ctx)
}

// Available lists only the items a guest can order.
func (m *MenuManager) Available(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := m.gw.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out, nil
}

// Search filters items by a case-insensitive match on name or category.
func (m *MenuManager) Search(items []domain.MenuItem, query string) []domain.MenuItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var out []domain.MenuItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
		}
	}
	return out
}

// Save creates the item when the form carries no ID, updates it otherwise.
// Name and price are required and checked before any network call.
func (m *MenuManager) Save(ctx context.Context, form ports.MenuItemInput) (*domain.MenuItem, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	if form.ID == "" {
		item, err := m.gw.CreateMenuItem(ctx, form)
		if err != nil {
			return nil, err
		}
		m.log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("menu item created")
		return item, nil
	}

	item, err := m.gw.UpdateMenuItem(ctx, form.ID, form)
	if err != nil {
		return nil, err
	}
	m.log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("menu item updated")
	return item, nil
}

// Delete removes the item.
func (m *MenuManager) Delete(ctx context.Context, id string) error {
	if err := m.gw.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	m.log.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}
