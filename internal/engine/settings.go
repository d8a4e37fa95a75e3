package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// Currency returns the display currency used by the CSV export.
func (e *Engine) Currency() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currency
}

// SetCurrency changes the display currency preference.
func (e *Engine) SetCurrency(ctx context.Context, currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	supported := false
	for _, c := range SupportedCurrencies {
		if c == currency {
			supported = true
			break
		}
	}
	if !supported {
		return ErrUnsupportedCurrency
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.currency = currency
	e.saveSlot(ctx, storage.KeyCurrency, e.currency)
	slog.Info("currency changed", "currency", currency)
	return nil
}

// Translucent returns the translucency display preference.
func (e *Engine) Translucent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.translucent
}

// SetTranslucent changes the translucency display preference.
func (e *Engine) SetTranslucent(ctx context.Context, translucent bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.translucent = translucent
	e.saveSlot(ctx, storage.KeyTranslucent, e.translucent)
}
