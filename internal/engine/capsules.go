package engine

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// AddCapsule creates a new spending capsule with a zero spent counter.
func (e *Engine) AddCapsule(ctx context.Context, name string, total decimal.Decimal, icon string) (model.Capsule, error) {
	capsule := model.Capsule{
		ID:    model.NewID(),
		Name:  name,
		Total: total,
		Spent: decimal.Zero,
		Icon:  icon,
	}
	if err := capsule.Validate(); err != nil {
		return model.Capsule{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.capsules = append(e.capsules, capsule)
	e.saveSlot(ctx, storage.KeyCapsules, e.capsules)

	slog.Info("capsule added", "id", capsule.ID, "name", name)
	return capsule, nil
}

// EditCapsule updates a capsule's name, budget limit, and icon. Spent is
// left alone; it only moves with expense effects. Unknown ids are a
// silent no-op.
func (e *Engine) EditCapsule(ctx context.Context, id, name string, total decimal.Decimal, icon string) error {
	probe := model.Capsule{ID: id, Name: name, Total: total}
	if err := probe.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.capsules {
		if e.capsules[i].ID != id {
			continue
		}
		e.capsules[i].Name = name
		e.capsules[i].Total = total
		e.capsules[i].Icon = icon
		e.saveSlot(ctx, storage.KeyCapsules, e.capsules)
		slog.Info("capsule edited", "id", id)
		return nil
	}
	slog.Debug("edit ignored, capsule not found", "id", id)
	return nil
}

// DeleteCapsule removes a capsule. Returns false when the id is unknown.
func (e *Engine) DeleteCapsule(ctx context.Context, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.capsules {
		if e.capsules[i].ID != id {
			continue
		}
		e.capsules = append(e.capsules[:i], e.capsules[i+1:]...)
		e.saveSlot(ctx, storage.KeyCapsules, e.capsules)
		slog.Info("capsule deleted", "id", id)
		return true
	}
	return false
}

// Capsules returns a copy of the capsule list.
func (e *Engine) Capsules() []model.Capsule {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Capsule, len(e.capsules))
	copy(out, e.capsules)
	return out
}
