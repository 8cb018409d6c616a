package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/amaumene/moviemood/internal/constants"
	apperrors "github.com/amaumene/moviemood/internal/errors"
	"github.com/amaumene/moviemood/internal/models"
	"github.com/amaumene/moviemood/pkg/httputil"
)

type catalogResponse struct {
	Moods  *[]string `json:"moods"`
	Genres *[]string `json:"genres"`
}

func (r *Recommendation) listing(ctx context.Context, op, path string) ([]models.MovieSummary, bool) {
	var resp models.ResultsResponse
	if err := r.getJSON(ctx, op, r.baseURL+path, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	return r.results(op, "results", resp.Results)
}

func (r *Recommendation) catalog(ctx context.Context, op, cacheKey, path string, pick func(*catalogResponse) *[]string) ([]string, bool) {
	if cached, found := r.cache.Get(cacheKey); found {
		r.logger.Debugf("[Client] %s served from cache", op)
		return cached, true
	}

	var resp catalogResponse
	if err := r.getJSON(ctx, op, r.baseURL+path, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	list := pick(&resp)
	if list == nil {
		return nil, r.fail(op, apperrors.NewMissingFieldError(op, op))
	}

	r.cache.Set(cacheKey, *list)
	return *list, true
}

// results turns a decoded list into the client contract: a missing key is a
// failure, an empty list a success.
func (r *Recommendation) results(op, field string, list *[]models.MovieSummary) ([]models.MovieSummary, bool) {
	if list == nil {
		return nil, r.fail(op, apperrors.NewMissingFieldError(op, field))
	}
	if *list == nil {
		return []models.MovieSummary{}, true
	}
	return *list, true
}

// getJSON performs one rate-limited GET and decodes a 2xx body into out.
func (r *Recommendation) getJSON(ctx context.Context, op, apiURL string, out interface{}) error {
	if err := r.rateLimiter.Wait(ctx); err != nil {
		return apperrors.NewRateLimitedError(op, err)
	}

	req, err := httputil.NewGetRequest(ctx, apiURL)
	if err != nil {
		return apperrors.NewInvalidInputError(op, fmt.Sprintf("invalid request url: %v", err))
	}

	r.logger.Debugf("[Client] GET %s (request %s)", apiURL, req.Header.Get(httputil.HeaderRequestID))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, io.LimitReader(resp.Body, constants.MaxErrorBodyBytes))
		return apperrors.NewStatusError(op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewDecodeError(op, err)
	}
	return nil
}

// fail logs err with its classification and returns false for the caller's
// ok result.
func (r *Recommendation) fail(op string, err error) bool {
	if apperrors.IsRetryable(err) {
		r.logger.Warnf("[Client] %s failed (%s, retryable): %v", op, apperrors.TypeOf(err), err)
	} else {
		r.logger.Errorf("[Client] %s failed (%s): %v", op, apperrors.TypeOf(err), err)
	}
	return false
}
