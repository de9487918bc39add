package cover

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Searcher is the external image search collaborator.
type Searcher interface {
	Search(ctx context.Context, keywords []string) (string, error)
}

var errNoResults = errors.New("image search returned no results")

// HttpSearcher queries an Unsplash-compatible search endpoint.
type HttpSearcher struct {
	endpoint string
	apiKey   string
}

func NewHttpSearcher(endpoint, apiKey string) *HttpSearcher {
	return &HttpSearcher{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
	}
}

type searchResult struct {
	Results []struct {
		Urls struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func (s *HttpSearcher) Search(ctx context.Context, keywords []string) (string, error) {
	if len(keywords) == 0 {
		return "", errNoResults
	}

	q := url.Values{}
	q.Set("query", strings.Join(keywords, " "))
	q.Set("per_page", "1")
	q.Set("orientation", "portrait")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Client-ID "+s.apiKey)
	}

	resp, err := httpc.DoRequest(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search status %d", resp.StatusCode)
	}

	var res searchResult
	if err := jsonx.UnmarshalFromReader(resp.Body, &res); err != nil {
		return "", fmt.Errorf("decode image search: %w", err)
	}
	for _, r := range res.Results {
		if r.Urls.Regular != "" {
			return r.Urls.Regular, nil
		}
		if r.Urls.Small != "" {
			return r.Urls.Small, nil
		}
	}
	return "", errNoResults
}
