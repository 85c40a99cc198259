package fetcher

import (
	"context"
	"testing"
)

func TestNoopRendererUnavailable(t *testing.T) {
	r := NoopRenderer{}
	if r.Available() {
		t.Error("expected NoopRenderer.Available to be false")
	}
}

func TestNoopRendererRenderPageFails(t *testing.T) {
	r := NoopRenderer{}
	_, err := r.RenderPage(context.Background(), "https://example.com")
	if err == nil {
		t.Error("expected NoopRenderer.RenderPage to always fail")
	}
}
