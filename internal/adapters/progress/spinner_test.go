package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	sink := NewSpinnerSink(&out)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageBroadcasting, Message: "Sending", Spinner: true})
	assert.True(t, sink.running)

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageWaiting, Message: "Waiting", Spinner: true})
	assert.True(t, sink.running)
	assert.Equal(t, " Waiting", sink.spinner.Suffix)

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})
	assert.False(t, sink.running)

	sink.Error("Nonce Not Set")
	assert.Contains(t, out.String(), "✓ Broadcasting")
	assert.Contains(t, out.String(), "✓ Waiting")
	assert.Contains(t, out.String(), "Nonce Not Set\n")
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageNonce, Spinner: true})
	sink.Info("ignored")
	sink.Error("ignored")
}
