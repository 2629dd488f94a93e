package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gammaphi/lamden-deploy/internal/app"
	"github.com/gammaphi/lamden-deploy/internal/cli/render"
	"github.com/gammaphi/lamden-deploy/internal/domain"
	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

type executeFunc func(ctx context.Context, prepared *usecase.PreparedTransaction, opts usecase.ExecuteOptions) (*usecase.SubmitResult, error)

// runSubmission renders the request, executes it and renders the outcome.
// Failed transactions and nonce failures only return an error in strict mode.
func runSubmission(cmd *cobra.Command, a *app.App, prepared *usecase.PreparedTransaction, execute executeFunc) error {
	cfg := a.Config
	out := cmd.OutOrStdout()

	text := cfg.Output == config.OutputText
	renderer := render.NewSubmitRenderer(out, isTerminal(out))
	if text {
		if err := renderer.RenderRequest(prepared.Network, prepared.Request); err != nil {
			return err
		}
	}

	result, err := execute(cmd.Context(), prepared, usecase.ExecuteOptions{Confirm: cfg.Confirm})
	if err != nil {
		if !errors.Is(err, domain.ErrNonceNotSet) {
			return err
		}

		a.Log.Debug("transaction not sent", "error", err)
		if text {
			_ = renderer.RenderNonceError()
		} else {
			doc := render.NewDocument(prepared, nil)
			doc.Error = "Nonce Not Set"
			if err := render.NewDocumentRenderer(out, cfg.Output).Render(doc); err != nil {
				return err
			}
		}
		if cfg.Strict {
			return err
		}
		return nil
	}

	if text {
		if err := renderer.RenderNonce(result.Nonce); err != nil {
			return err
		}
		if err := renderer.RenderResponse(result.Response); err != nil {
			return err
		}
	} else {
		if err := render.NewDocumentRenderer(out, cfg.Output).Render(render.NewDocument(prepared, result)); err != nil {
			return err
		}
	}

	if result.Failed() && cfg.Strict {
		return domain.TransactionFailedErr{Result: result.Response}
	}
	return nil
}
