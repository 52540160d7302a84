package status

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Sproutly/SPROUT-MOBILE/shared"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Status(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeStatusEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeStatusEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return svc.Status(ctx)
	}
}

func ignorePayload(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
