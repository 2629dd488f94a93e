package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/gammaphi/lamden-deploy/internal/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// ConfirmAdapter asks for a yes/no answer on the terminal
type ConfirmAdapter struct {
	config *config.RuntimeConfig
	run    func(promptui.Prompt) (string, error)
}

// NewConfirmAdapter creates a new confirmation adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{
		config: cfg,
		run: func(p promptui.Prompt) (string, error) {
			return p.Run()
		},
	}
}

// Confirm returns true when the operator answers yes. Mainnet prompts are
// highlighted.
func (c *ConfirmAdapter) Confirm(ctx context.Context, message string) (bool, error) {
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation not available in non-interactive mode")
	}

	label := message
	if c.config.Network.IsMainnet() {
		label = message + " (MAINNET)"
	}

	_, err := c.run(promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	})
	if err != nil {
		// promptui reports "no" as ErrAbort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return true, nil
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
