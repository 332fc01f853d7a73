package esplora_explorer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
)

func (s *service) get(ctx context.Context, subPath string) ([]byte, error) {
	return s.request(ctx, http.MethodGet, subPath, nil)
}

func (s *service) post(
	ctx context.Context, subPath string, body io.Reader,
) ([]byte, error) {
	return s.request(ctx, http.MethodPost, subPath, body)
}

func (s *service) request(
	ctx context.Context, method, subPath string, requestBody io.Reader,
) ([]byte, error) {
	url := fmt.Sprintf("%s%s", s.baseUrl, subPath)
	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	log.WithFields(log.Fields{
		"method": method,
		"url":    url,
	}).Debug("sending request to explorer")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(
			"explorer returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)),
		)
	}

	return body, nil
}
